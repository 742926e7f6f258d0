package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/model"
)

// UserRepository доступ к пользователям
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo создаёт UserRepository
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

// RoleRepository доступ к ролям
type RoleRepository interface {
	GetByValue(ctx context.Context, value string) (*model.Role, error)
}

type roleRepo struct {
	db *gorm.DB
}

// NewRoleRepo создаёт RoleRepository
func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) GetByValue(ctx context.Context, value string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Where("value = ?", value).
		First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}
