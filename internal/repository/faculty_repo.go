package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/model"
)

// FacultyRepository доступ к факультетам
type FacultyRepository interface {
	Create(ctx context.Context, faculty *model.Faculty) error
	GetByID(ctx context.Context, id string) (*model.Faculty, error)
	GetByName(ctx context.Context, name string) (*model.Faculty, error)
	List(ctx context.Context) ([]model.Faculty, error)
	Update(ctx context.Context, faculty *model.Faculty) error
	Delete(ctx context.Context, id string) error
}

type facultyRepo struct {
	db *gorm.DB
}

// NewFacultyRepo создаёт FacultyRepository
func NewFacultyRepo(db *gorm.DB) FacultyRepository {
	return &facultyRepo{db: db}
}

func (r *facultyRepo) Create(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

func (r *facultyRepo) GetByID(ctx context.Context, id string) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.db.WithContext(ctx).
		Preload("Groups", func(db *gorm.DB) *gorm.DB {
			return db.Order("groups.course ASC, groups.name ASC")
		}).
		Where("faculty_id = ?", id).
		First(&faculty).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) GetByName(ctx context.Context, name string) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&faculty).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) List(ctx context.Context) ([]model.Faculty, error) {
	var faculties []model.Faculty
	err := r.db.WithContext(ctx).
		Preload("Groups", func(db *gorm.DB) *gorm.DB {
			return db.Order("groups.course ASC, groups.name ASC")
		}).
		Order("name ASC").
		Find(&faculties).Error
	return faculties, err
}

func (r *facultyRepo) Update(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Save(faculty).Error
}

func (r *facultyRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("faculty_id = ?", id).
		Delete(&model.Faculty{}).Error
}
