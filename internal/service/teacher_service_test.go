package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/model"
)

func setupTestTeacherService() (TeacherService, *testRepos) {
	repos := newTestRepos()
	svc := NewTeacherService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func burden(teacherID string, year int, month time.Month, hours int) model.TeacherBurden {
	return model.TeacherBurden{
		TeacherID: teacherID,
		Month:     time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		Hours:     hours,
	}
}

// ── Add / Edit / Delete ──

func TestTeacherService_Add_Success(t *testing.T) {
	svc, _ := setupTestTeacherService()

	resp, err := svc.Add(context.Background(), &dto.AddTeacherRequest{
		Surname: "Иванов", Name: "Иван", Patronymic: "Иванович", AH: 120,
	})
	if err != nil {
		t.Fatalf("Add вернул ошибку: %v", err)
	}
	if resp.Surname != "Иванов" || resp.AH != 120 || resp.HH != 0 {
		t.Errorf("неверный ответ: %+v", resp)
	}
}

func TestTeacherService_Add_DuplicateFullName(t *testing.T) {
	svc, _ := setupTestTeacherService()
	ctx := context.Background()

	req := &dto.AddTeacherRequest{Surname: "Иванов", Name: "Иван", AH: 120}
	if _, err := svc.Add(ctx, req); err != nil {
		t.Fatalf("первый Add вернул ошибку: %v", err)
	}
	if _, err := svc.Add(ctx, req); !errors.Is(err, ErrTeacherExists) {
		t.Fatalf("ожидался ErrTeacherExists, получено: %v", err)
	}
}

func TestTeacherService_Add_SameSurnameDifferentName(t *testing.T) {
	svc, _ := setupTestTeacherService()
	ctx := context.Background()

	if _, err := svc.Add(ctx, &dto.AddTeacherRequest{Surname: "Иванов", Name: "Иван", AH: 100}); err != nil {
		t.Fatalf("первый Add вернул ошибку: %v", err)
	}
	// однофамилец с другим именем не считается дубликатом
	if _, err := svc.Add(ctx, &dto.AddTeacherRequest{Surname: "Иванов", Name: "Пётр", AH: 80}); err != nil {
		t.Fatalf("однофамилец отклонён: %v", err)
	}
}

func TestTeacherService_Edit_NotFound(t *testing.T) {
	svc, _ := setupTestTeacherService()

	_, err := svc.Edit(context.Background(), &dto.EditTeacherRequest{
		ID: "tch-missing", Surname: "Иванов", AH: 100,
	})
	if !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("ожидался ErrTeacherNotFound, получено: %v", err)
	}
}

func TestTeacherService_Delete(t *testing.T) {
	svc, repos := setupTestTeacherService()
	repos.teacher.teachers["tch-1"] = &model.Teacher{TeacherID: "tch-1", Surname: "Иванов"}

	if err := svc.Delete(context.Background(), "tch-1"); err != nil {
		t.Fatalf("Delete вернул ошибку: %v", err)
	}
	if err := svc.Delete(context.Background(), "tch-1"); !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("повторный Delete: ожидался ErrTeacherNotFound, получено: %v", err)
	}
}

// ── фильтр занятости ──

func TestFilterFreeTeachers(t *testing.T) {
	march := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	teachers := []model.Teacher{
		// без записей нагрузки — свободен
		{TeacherID: "t1", Surname: "Первый"},
		// нулевая нагрузка за март — свободен
		{TeacherID: "t2", Surname: "Второй", Burden: []model.TeacherBurden{
			burden("t2", 2026, time.March, 0),
		}},
		// часы за март — занят
		{TeacherID: "t3", Surname: "Третий", Burden: []model.TeacherBurden{
			burden("t3", 2026, time.March, 4),
		}},
		// часы только за апрель — для марта свободен
		{TeacherID: "t4", Surname: "Четвёртый", Burden: []model.TeacherBurden{
			burden("t4", 2026, time.April, 6),
		}},
		// часы за март прошлого года — свободен
		{TeacherID: "t5", Surname: "Пятый", Burden: []model.TeacherBurden{
			burden("t5", 2025, time.March, 6),
		}},
	}

	free := FilterFreeTeachers(teachers, march)

	if len(free) != 4 {
		t.Fatalf("ожидалось 4 свободных, получено %d", len(free))
	}
	wantOrder := []string{"t1", "t2", "t4", "t5"}
	for i, want := range wantOrder {
		if free[i].TeacherID != want {
			t.Errorf("позиция %d: ожидался %s, получен %s", i, want, free[i].TeacherID)
		}
	}
}

func TestSortByLoadRatio(t *testing.T) {
	teachers := []model.Teacher{
		{TeacherID: "t1", AcademicHours: 100, AccumulatedHours: 50}, // 2.0
		{TeacherID: "t2", AcademicHours: 100, AccumulatedHours: 10}, // 10.0
		{TeacherID: "t3", AcademicHours: 100, AccumulatedHours: 0},  // свободнее всех
		{TeacherID: "t4", AcademicHours: 50, AccumulatedHours: 50},  // 1.0
	}

	sortByLoadRatio(teachers)

	wantOrder := []string{"t3", "t2", "t1", "t4"}
	for i, want := range wantOrder {
		if teachers[i].TeacherID != want {
			t.Errorf("позиция %d: ожидался %s, получен %s", i, want, teachers[i].TeacherID)
		}
	}
}

func TestSortByLoadRatio_Stable(t *testing.T) {
	// равные отношения сохраняют исходный порядок
	teachers := []model.Teacher{
		{TeacherID: "a", AcademicHours: 100, AccumulatedHours: 50},
		{TeacherID: "b", AcademicHours: 200, AccumulatedHours: 100},
		{TeacherID: "c", AcademicHours: 10, AccumulatedHours: 5},
	}

	sortByLoadRatio(teachers)

	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if teachers[i].TeacherID != want {
			t.Errorf("позиция %d: ожидался %s, получен %s", i, want, teachers[i].TeacherID)
		}
	}
}

// ── GetByDiscipline ──

func TestTeacherService_GetByDiscipline(t *testing.T) {
	svc, repos := setupTestTeacherService()

	busy := model.Teacher{TeacherID: "t-busy", Surname: "Занятов", AcademicHours: 100,
		Burden: []model.TeacherBurden{burden("t-busy", 2026, time.March, 8)}}
	idle := model.Teacher{TeacherID: "t-idle", Surname: "Свободин", AcademicHours: 100}

	repos.discipline.disciplines["dis-1"] = &model.Discipline{
		DisciplineID: "dis-1",
		Name:         "Физика",
		Teachers:     []model.Teacher{busy, idle},
	}

	resp, err := svc.GetByDiscipline(context.Background(), &dto.TeachersByDisciplineRequest{
		ID: "dis-1", Date: "2026-03-10",
	})
	if err != nil {
		t.Fatalf("GetByDiscipline вернул ошибку: %v", err)
	}

	if len(resp.Teachers) != 2 {
		t.Errorf("ожидалось 2 преподавателя, получено %d", len(resp.Teachers))
	}
	if len(resp.TeachersFree) != 1 || resp.TeachersFree[0].ID != "t-idle" {
		t.Errorf("неверный список свободных: %+v", resp.TeachersFree)
	}
}

func TestTeacherService_GetByDiscipline_BadDate(t *testing.T) {
	svc, repos := setupTestTeacherService()
	repos.discipline.disciplines["dis-1"] = &model.Discipline{DisciplineID: "dis-1", Name: "Физика"}

	_, err := svc.GetByDiscipline(context.Background(), &dto.TeachersByDisciplineRequest{
		ID: "dis-1", Date: "10.03.2026",
	})
	if !errors.Is(err, ErrBadDate) {
		t.Fatalf("ожидался ErrBadDate, получено: %v", err)
	}
}

func TestTeacherService_GetByDiscipline_NotFound(t *testing.T) {
	svc, _ := setupTestTeacherService()

	_, err := svc.GetByDiscipline(context.Background(), &dto.TeachersByDisciplineRequest{
		ID: "dis-missing", Date: "2026-03-10",
	})
	if !errors.Is(err, ErrDisciplineNotFound) {
		t.Fatalf("ожидался ErrDisciplineNotFound, получено: %v", err)
	}
}
