package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonType тип занятия (лекция, практика, лабораторная) — таблица lesson_types
type LessonType struct {
	TypeID string `gorm:"type:uuid;primaryKey" json:"type_id"`
	Name   string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	BaseModel
}

// TableName имя таблицы
func (LessonType) TableName() string { return "lesson_types" }

// BeforeCreate назначает UUID, если не задан
func (t *LessonType) BeforeCreate(_ *gorm.DB) error {
	if t.TypeID == "" {
		t.TypeID = uuid.NewString()
	}
	return nil
}
