package model

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseMarker маркер курса в названии группы: символ после него — номер курса.
// Пример: "ПИ-К2" → 2 курс.
const CourseMarker = "К"

// ErrNoCourseMarker название группы не содержит маркер курса
var ErrNoCourseMarker = errors.New("название группы не содержит маркер курса")

// Group учебная группа — таблица groups
type Group struct {
	GroupID   string  `gorm:"type:uuid;primaryKey" json:"group_id"`
	Name      string  `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Course    int     `gorm:"not null;default:1" json:"course"`
	FacultyID *string `gorm:"type:uuid;index" json:"faculty_id,omitempty"`
	BaseModel

	// связи
	Faculty *Faculty `gorm:"foreignKey:FacultyID;references:FacultyID" json:"faculty,omitempty"`
}

// TableName имя таблицы
func (Group) TableName() string { return "groups" }

// BeforeCreate назначает UUID, если не задан
func (g *Group) BeforeCreate(_ *gorm.DB) error {
	if g.GroupID == "" {
		g.GroupID = uuid.NewString()
	}
	return nil
}

// CourseFromName извлекает номер курса из названия группы:
// цифра, следующая сразу за маркером "К".
func CourseFromName(name string) (int, error) {
	idx := strings.LastIndex(name, CourseMarker)
	if idx < 0 {
		return 0, ErrNoCourseMarker
	}
	rest := name[idx+len(CourseMarker):]
	if rest == "" {
		return 0, ErrNoCourseMarker
	}
	course, err := strconv.Atoi(rest[:1])
	if err != nil {
		return 0, ErrNoCourseMarker
	}
	return course, nil
}
