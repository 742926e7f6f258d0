package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Значения ролей
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Role роль пользователя — таблица roles
type Role struct {
	RoleID string `gorm:"type:uuid;primaryKey" json:"role_id"`
	Value  string `gorm:"type:varchar(32);not null;uniqueIndex" json:"value"`
	BaseModel
}

// TableName имя таблицы
func (Role) TableName() string { return "roles" }

// BeforeCreate назначает UUID, если не задан
func (r *Role) BeforeCreate(_ *gorm.DB) error {
	if r.RoleID == "" {
		r.RoleID = uuid.NewString()
	}
	return nil
}
