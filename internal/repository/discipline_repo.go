package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/model"
)

// DisciplineRepository доступ к дисциплинам
type DisciplineRepository interface {
	Create(ctx context.Context, discipline *model.Discipline) error
	GetByID(ctx context.Context, id string) (*model.Discipline, error)
	GetByName(ctx context.Context, name string) (*model.Discipline, error)
	List(ctx context.Context) ([]model.Discipline, error)
	Update(ctx context.Context, discipline *model.Discipline) error
	ReplaceGroups(ctx context.Context, discipline *model.Discipline, groups []model.Group) error
	ReplaceTeachers(ctx context.Context, discipline *model.Discipline, teachers []model.Teacher) error
	Delete(ctx context.Context, id string) error
}

type disciplineRepo struct {
	db *gorm.DB
}

// NewDisciplineRepo создаёт DisciplineRepository
func NewDisciplineRepo(db *gorm.DB) DisciplineRepository {
	return &disciplineRepo{db: db}
}

// Create сохраняет дисциплину вместе со связями Groups/Teachers
func (r *disciplineRepo) Create(ctx context.Context, discipline *model.Discipline) error {
	return r.db.WithContext(ctx).Create(discipline).Error
}

func (r *disciplineRepo) GetByID(ctx context.Context, id string) (*model.Discipline, error) {
	var discipline model.Discipline
	err := r.db.WithContext(ctx).
		Preload("Groups").
		Preload("Teachers").
		Preload("Teachers.Burden").
		Where("discipline_id = ?", id).
		First(&discipline).Error
	if err != nil {
		return nil, err
	}
	return &discipline, nil
}

func (r *disciplineRepo) GetByName(ctx context.Context, name string) (*model.Discipline, error) {
	var discipline model.Discipline
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&discipline).Error
	if err != nil {
		return nil, err
	}
	return &discipline, nil
}

func (r *disciplineRepo) List(ctx context.Context) ([]model.Discipline, error) {
	var disciplines []model.Discipline
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&disciplines).Error
	return disciplines, err
}

func (r *disciplineRepo) Update(ctx context.Context, discipline *model.Discipline) error {
	return r.db.WithContext(ctx).
		Model(discipline).
		Where("discipline_id = ?", discipline.DisciplineID).
		Updates(map[string]interface{}{
			"name":           discipline.Name,
			"academic_hours": discipline.AcademicHours,
		}).Error
}

func (r *disciplineRepo) ReplaceGroups(ctx context.Context, discipline *model.Discipline, groups []model.Group) error {
	return r.db.WithContext(ctx).Model(discipline).Association("Groups").Replace(groups)
}

func (r *disciplineRepo) ReplaceTeachers(ctx context.Context, discipline *model.Discipline, teachers []model.Teacher) error {
	return r.db.WithContext(ctx).Model(discipline).Association("Teachers").Replace(teachers)
}

func (r *disciplineRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("discipline_id = ?", id).
		Delete(&model.Discipline{}).Error
}
