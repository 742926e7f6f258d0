package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/model"
	"github.com/Looz41/Diplom-sub000/internal/repository"
)

// Единая точка "найти или создать" для сущностей, на которые другие
// модули ссылаются по имени. Автосоздание при добавлении дисциплины или
// факультета идёт только через эти функции.

// resolveGroup возвращает группу по названию, создавая её при отсутствии.
// Номер курса извлекается из названия; названия без маркера курса
// отклоняются ещё до записи.
func resolveGroup(ctx context.Context, repo repository.GroupRepository, name string, facultyID *string) (*model.Group, error) {
	group, err := repo.GetByName(ctx, name)
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	course, err := model.CourseFromName(name)
	if err != nil {
		return nil, err
	}

	group = &model.Group{
		Name:      name,
		Course:    course,
		FacultyID: facultyID,
	}
	if err := repo.Create(ctx, group); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// параллельное создание — перечитываем
			return repo.GetByName(ctx, name)
		}
		return nil, err
	}
	return group, nil
}

// resolveTeacher возвращает преподавателя по фамилии, создавая запись
// с нулевой нагрузкой при отсутствии
func resolveTeacher(ctx context.Context, repo repository.TeacherRepository, surname string) (*model.Teacher, error) {
	teacher, err := repo.GetBySurname(ctx, surname)
	if err == nil {
		return teacher, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	teacher = &model.Teacher{Surname: surname}
	if err := repo.Create(ctx, teacher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repo.GetBySurname(ctx, surname)
		}
		return nil, err
	}
	return teacher, nil
}
