package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Discipline дисциплина — таблица disciplines.
// Связана m2m с группами и преподавателями; список преподавателей
// не может быть пустым (контролируется сервисным слоем).
type Discipline struct {
	DisciplineID  string `gorm:"type:uuid;primaryKey" json:"discipline_id"`
	Name          string `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	AcademicHours int    `gorm:"not null;default:0" json:"academic_hours"`
	BaseModel

	// связи
	Groups   []Group   `gorm:"many2many:discipline_groups;foreignKey:DisciplineID;joinForeignKey:DisciplineID;references:GroupID;joinReferences:GroupID" json:"groups,omitempty"`
	Teachers []Teacher `gorm:"many2many:discipline_teachers;foreignKey:DisciplineID;joinForeignKey:DisciplineID;references:TeacherID;joinReferences:TeacherID" json:"teachers,omitempty"`
}

// TableName имя таблицы
func (Discipline) TableName() string { return "disciplines" }

// BeforeCreate назначает UUID, если не задан
func (d *Discipline) BeforeCreate(_ *gorm.DB) error {
	if d.DisciplineID == "" {
		d.DisciplineID = uuid.NewString()
	}
	return nil
}

// HasTeacher проверяет, закреплён ли преподаватель за дисциплиной
func (d *Discipline) HasTeacher(teacherID string) bool {
	for _, t := range d.Teachers {
		if t.TeacherID == teacherID {
			return true
		}
	}
	return false
}
