package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/model"
	"github.com/Looz41/Diplom-sub000/internal/repository"
)

// ── ошибки модуля преподавателей ──

var (
	ErrTeacherExists   = errors.New("преподаватель с таким ФИО уже существует")
	ErrTeacherNotFound = errors.New("преподаватель не найден")
	ErrBadDate         = errors.New("дата должна быть в формате ГГГГ-ММ-ДД")
)

// TeacherService бизнес-логика преподавателей
type TeacherService interface {
	Add(ctx context.Context, req *dto.AddTeacherRequest) (*dto.TeacherResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error)
	List(ctx context.Context) ([]dto.TeacherResponse, error)
	GetByDiscipline(ctx context.Context, req *dto.TeachersByDisciplineRequest) (*dto.TeachersByDisciplineResponse, error)
	Edit(ctx context.Context, req *dto.EditTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id string) error
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService создаёт TeacherService
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

// ────────────────────── Add ──────────────────────

func (s *teacherService) Add(ctx context.Context, req *dto.AddTeacherRequest) (*dto.TeacherResponse, error) {
	// дубликат определяется по полному ФИО
	if _, err := s.repo.Teacher.GetByFullName(ctx, req.Surname, req.Name, req.Patronymic); err == nil {
		return nil, ErrTeacherExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("ошибка поиска преподавателя", zap.Error(err))
		return nil, err
	}

	teacher := &model.Teacher{
		Surname:       req.Surname,
		Name:          req.Name,
		Patronymic:    req.Patronymic,
		AcademicHours: req.AH,
	}

	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTeacherExists
		}
		s.logger.Error("ошибка создания преподавателя", zap.Error(err))
		return nil, err
	}

	return toTeacherResponse(teacher), nil
}

// ────────────────────── GetByID / List ──────────────────────

func (s *teacherService) GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("ошибка поиска преподавателя", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toTeacherResponse(teacher), nil
}

func (s *teacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	teachers, err := s.repo.Teacher.List(ctx)
	if err != nil {
		s.logger.Error("ошибка выборки преподавателей", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		result = append(result, *toTeacherResponse(&teachers[i]))
	}
	return result, nil
}

// ────────────────────── GetByDiscipline ──────────────────────

// GetByDiscipline возвращает преподавателей дисциплины и отдельно тех,
// кто свободен в месяце запрошенной даты. Свободен — значит записей
// нагрузки на месяц нет либо все они нулевые. Исходный порядок
// сохраняется; свободные дополнительно устойчиво сортируются по
// убыванию отношения aH/hH (менее загруженные — выше).
func (s *teacherService) GetByDiscipline(ctx context.Context, req *dto.TeachersByDisciplineRequest) (*dto.TeachersByDisciplineResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrBadDate
	}

	discipline, err := s.repo.Discipline.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDisciplineNotFound
		}
		s.logger.Error("ошибка поиска дисциплины", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	free := FilterFreeTeachers(discipline.Teachers, date)
	sortByLoadRatio(free)

	resp := &dto.TeachersByDisciplineResponse{
		Teachers:     make([]dto.TeacherResponse, 0, len(discipline.Teachers)),
		TeachersFree: make([]dto.TeacherResponse, 0, len(free)),
	}
	for i := range discipline.Teachers {
		resp.Teachers = append(resp.Teachers, *toTeacherResponse(&discipline.Teachers[i]))
	}
	for i := range free {
		resp.TeachersFree = append(resp.TeachersFree, *toTeacherResponse(&free[i]))
	}
	return resp, nil
}

// ────────────────────── Edit ──────────────────────

// Edit полная перезапись полей (частичного обновления нет)
func (s *teacherService) Edit(ctx context.Context, req *dto.EditTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("ошибка поиска преподавателя", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	teacher.Surname = req.Surname
	teacher.Name = req.Name
	teacher.Patronymic = req.Patronymic
	teacher.AcademicHours = req.AH

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTeacherExists
		}
		s.logger.Error("ошибка обновления преподавателя", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	return toTeacherResponse(teacher), nil
}

// ────────────────────── Delete ──────────────────────

func (s *teacherService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Teacher.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		s.logger.Error("ошибка поиска преподавателя", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Teacher.Delete(ctx, id); err != nil {
		s.logger.Error("ошибка удаления преподавателя", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── фильтр занятости ──

// FilterFreeTeachers отбирает преподавателей, свободных в месяце даты d.
// Сравнение идёт по календарным месяцу и году, не по точной дате;
// порядок входного списка сохраняется.
func FilterFreeTeachers(teachers []model.Teacher, d time.Time) []model.Teacher {
	free := make([]model.Teacher, 0, len(teachers))
	for _, t := range teachers {
		busy := false
		for _, b := range t.Burden {
			if b.SameMonth(d) && b.Hours > 0 {
				busy = true
				break
			}
		}
		if !busy {
			free = append(free, t)
		}
	}
	return free
}

// sortByLoadRatio устойчиво сортирует по убыванию aH/hH.
// Сравнение через перекрёстное умножение: деления на ноль нет,
// hH=0 трактуется как максимальная свобода.
func sortByLoadRatio(teachers []model.Teacher) {
	sort.SliceStable(teachers, func(i, j int) bool {
		a, b := teachers[i], teachers[j]
		return a.AcademicHours*b.AccumulatedHours > b.AcademicHours*a.AccumulatedHours
	})
}

// ── внутренние помощники ──

func toTeacherResponse(t *model.Teacher) *dto.TeacherResponse {
	resp := &dto.TeacherResponse{
		ID:         t.TeacherID,
		Surname:    t.Surname,
		Name:       t.Name,
		Patronymic: t.Patronymic,
		AH:         t.AcademicHours,
		HH:         t.AccumulatedHours,
	}
	for _, b := range t.Burden {
		resp.Burden = append(resp.Burden, dto.BurdenResponse{
			Hours: b.Hours,
			Month: b.Month.Format("2006-01"),
		})
	}
	return resp
}
