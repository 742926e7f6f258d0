package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audithoria аудитория — таблица audithorias
type Audithoria struct {
	AudithoriaID   string `gorm:"type:uuid;primaryKey" json:"audithoria_id"`
	Name           string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	IsComputerRoom bool   `gorm:"not null;default:false" json:"is_computer_room"`
	BaseModel
}

// TableName имя таблицы
func (Audithoria) TableName() string { return "audithorias" }

// BeforeCreate назначает UUID, если не задан
func (a *Audithoria) BeforeCreate(_ *gorm.DB) error {
	if a.AudithoriaID == "" {
		a.AudithoriaID = uuid.NewString()
	}
	return nil
}
