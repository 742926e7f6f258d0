package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/model"
)

// GroupRepository доступ к учебным группам
type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	GetByID(ctx context.Context, id string) (*model.Group, error)
	GetByName(ctx context.Context, name string) (*model.Group, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]model.Group, error)
	Update(ctx context.Context, group *model.Group) error
	Delete(ctx context.Context, id string) error
	DetachFromFaculty(ctx context.Context, facultyID string) error
}

type groupRepo struct {
	db *gorm.DB
}

// NewGroupRepo создаёт GroupRepository
func NewGroupRepo(db *gorm.DB) GroupRepository {
	return &groupRepo{db: db}
}

func (r *groupRepo) Create(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *groupRepo) GetByID(ctx context.Context, id string) (*model.Group, error) {
	var group model.Group
	err := r.db.WithContext(ctx).
		Where("group_id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) GetByName(ctx context.Context, name string) (*model.Group, error) {
	var group model.Group
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepo) ListByFaculty(ctx context.Context, facultyID string) ([]model.Group, error) {
	var groups []model.Group
	err := r.db.WithContext(ctx).
		Where("faculty_id = ?", facultyID).
		Order("course ASC, name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *groupRepo) Update(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *groupRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("group_id = ?", id).
		Delete(&model.Group{}).Error
}

// DetachFromFaculty отвязывает все группы факультета (при перезаписи состава)
func (r *groupRepo) DetachFromFaculty(ctx context.Context, facultyID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Group{}).
		Where("faculty_id = ?", facultyID).
		Update("faculty_id", nil).Error
}
