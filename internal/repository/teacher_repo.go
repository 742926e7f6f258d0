package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Looz41/Diplom-sub000/internal/model"
)

// TeacherRepository доступ к преподавателям и их нагрузке
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	GetBySurname(ctx context.Context, surname string) (*model.Teacher, error)
	GetByFullName(ctx context.Context, surname, name, patronymic string) (*model.Teacher, error)
	List(ctx context.Context) ([]model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id string) error
	AddAccumulatedHours(ctx context.Context, id string, hours int) error
	UpsertBurden(ctx context.Context, teacherID string, month time.Time, hours int) error
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo создаёт TeacherRepository
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepo) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Burden").
		Where("teacher_id = ?", id).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetBySurname(ctx context.Context, surname string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Burden").
		Where("surname = ?", surname).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByFullName(ctx context.Context, surname, name, patronymic string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("surname = ? AND name = ? AND patronymic = ?", surname, name, patronymic).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) List(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.db.WithContext(ctx).
		Preload("Burden").
		Order("surname ASC, name ASC").
		Find(&teachers).Error
	return teachers, err
}

func (r *teacherRepo) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("teacher_id = ?", id).
		Delete(&model.Teacher{}).Error
}

// AddAccumulatedHours атомарно наращивает hH преподавателя
func (r *teacherRepo) AddAccumulatedHours(ctx context.Context, id string, hours int) error {
	return r.db.WithContext(ctx).
		Model(&model.Teacher{}).
		Where("teacher_id = ?", id).
		Update("accumulated_hours", gorm.Expr("accumulated_hours + ?", hours)).Error
}

// UpsertBurden добавляет часы к записи нагрузки за месяц,
// создавая запись при её отсутствии
func (r *teacherRepo) UpsertBurden(ctx context.Context, teacherID string, month time.Time, hours int) error {
	firstOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	burden := model.TeacherBurden{
		TeacherID: teacherID,
		Month:     firstOfMonth,
		Hours:     hours,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "teacher_id"}, {Name: "month"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"hours": gorm.Expr("teacher_burdens.hours + ?", hours)}),
		}).
		Create(&burden).Error
}
