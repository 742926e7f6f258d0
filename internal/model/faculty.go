package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Faculty факультет — таблица faculties
type Faculty struct {
	FacultyID string `gorm:"type:uuid;primaryKey" json:"faculty_id"`
	Name      string `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	BaseModel

	// связи
	Groups []Group `gorm:"foreignKey:FacultyID;references:FacultyID" json:"groups,omitempty"`
}

// TableName имя таблицы
func (Faculty) TableName() string { return "faculties" }

// BeforeCreate назначает UUID, если не задан (работает и на SQLite)
func (f *Faculty) BeforeCreate(_ *gorm.DB) error {
	if f.FacultyID == "" {
		f.FacultyID = uuid.NewString()
	}
	return nil
}
