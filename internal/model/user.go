package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User пользователь системы — таблица users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	BaseModel

	// связи
	Roles []Role `gorm:"many2many:user_roles;foreignKey:UserID;joinForeignKey:UserID;references:RoleID;joinReferences:RoleID" json:"roles,omitempty"`
}

// TableName имя таблицы
func (User) TableName() string { return "users" }

// BeforeCreate назначает UUID, если не задан
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}

// RoleValues значения ролей пользователя списком строк
func (u *User) RoleValues() []string {
	values := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		values = append(values, r.Value)
	}
	return values
}
