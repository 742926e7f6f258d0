package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/model"
)

// AudithoriaRepository доступ к аудиториям
type AudithoriaRepository interface {
	Create(ctx context.Context, audithoria *model.Audithoria) error
	GetByID(ctx context.Context, id string) (*model.Audithoria, error)
	GetByName(ctx context.Context, name string) (*model.Audithoria, error)
	List(ctx context.Context) ([]model.Audithoria, error)
	Update(ctx context.Context, audithoria *model.Audithoria) error
	Delete(ctx context.Context, id string) error
}

type audithoriaRepo struct {
	db *gorm.DB
}

// NewAudithoriaRepo создаёт AudithoriaRepository
func NewAudithoriaRepo(db *gorm.DB) AudithoriaRepository {
	return &audithoriaRepo{db: db}
}

func (r *audithoriaRepo) Create(ctx context.Context, audithoria *model.Audithoria) error {
	return r.db.WithContext(ctx).Create(audithoria).Error
}

func (r *audithoriaRepo) GetByID(ctx context.Context, id string) (*model.Audithoria, error) {
	var audithoria model.Audithoria
	err := r.db.WithContext(ctx).
		Where("audithoria_id = ?", id).
		First(&audithoria).Error
	if err != nil {
		return nil, err
	}
	return &audithoria, nil
}

func (r *audithoriaRepo) GetByName(ctx context.Context, name string) (*model.Audithoria, error) {
	var audithoria model.Audithoria
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&audithoria).Error
	if err != nil {
		return nil, err
	}
	return &audithoria, nil
}

func (r *audithoriaRepo) List(ctx context.Context) ([]model.Audithoria, error) {
	var audithorias []model.Audithoria
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&audithorias).Error
	return audithorias, err
}

func (r *audithoriaRepo) Update(ctx context.Context, audithoria *model.Audithoria) error {
	return r.db.WithContext(ctx).Save(audithoria).Error
}

func (r *audithoriaRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("audithoria_id = ?", id).
		Delete(&model.Audithoria{}).Error
}

// LessonTypeRepository доступ к типам занятий
type LessonTypeRepository interface {
	Create(ctx context.Context, lessonType *model.LessonType) error
	GetByID(ctx context.Context, id string) (*model.LessonType, error)
	GetByName(ctx context.Context, name string) (*model.LessonType, error)
	List(ctx context.Context) ([]model.LessonType, error)
	Update(ctx context.Context, lessonType *model.LessonType) error
	Delete(ctx context.Context, id string) error
}

type lessonTypeRepo struct {
	db *gorm.DB
}

// NewLessonTypeRepo создаёт LessonTypeRepository
func NewLessonTypeRepo(db *gorm.DB) LessonTypeRepository {
	return &lessonTypeRepo{db: db}
}

func (r *lessonTypeRepo) Create(ctx context.Context, lessonType *model.LessonType) error {
	return r.db.WithContext(ctx).Create(lessonType).Error
}

func (r *lessonTypeRepo) GetByID(ctx context.Context, id string) (*model.LessonType, error) {
	var lessonType model.LessonType
	err := r.db.WithContext(ctx).
		Where("type_id = ?", id).
		First(&lessonType).Error
	if err != nil {
		return nil, err
	}
	return &lessonType, nil
}

func (r *lessonTypeRepo) GetByName(ctx context.Context, name string) (*model.LessonType, error) {
	var lessonType model.LessonType
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&lessonType).Error
	if err != nil {
		return nil, err
	}
	return &lessonType, nil
}

func (r *lessonTypeRepo) List(ctx context.Context) ([]model.LessonType, error) {
	var types []model.LessonType
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *lessonTypeRepo) Update(ctx context.Context, lessonType *model.LessonType) error {
	return r.db.WithContext(ctx).Save(lessonType).Error
}

func (r *lessonTypeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("type_id = ?", id).
		Delete(&model.LessonType{}).Error
}
