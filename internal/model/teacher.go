package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Teacher преподаватель — таблица teachers.
// AcademicHours (aH) — плановая нагрузка, AccumulatedHours (hH) —
// фактически назначенные часы; hH только растёт (+2 за пару).
type Teacher struct {
	TeacherID        string `gorm:"type:uuid;primaryKey" json:"teacher_id"`
	Surname          string `gorm:"type:varchar(100);not null;uniqueIndex:uq_teachers_fio" json:"surname"`
	Name             string `gorm:"type:varchar(100);not null;default:'';uniqueIndex:uq_teachers_fio" json:"name"`
	Patronymic       string `gorm:"type:varchar(100);not null;default:'';uniqueIndex:uq_teachers_fio" json:"patronymic"`
	AcademicHours    int    `gorm:"not null;default:0" json:"academic_hours"`
	AccumulatedHours int    `gorm:"not null;default:0" json:"accumulated_hours"`
	BaseModel

	// связи
	Burden []TeacherBurden `gorm:"foreignKey:TeacherID;references:TeacherID" json:"burden,omitempty"`
}

// TableName имя таблицы
func (Teacher) TableName() string { return "teachers" }

// BeforeCreate назначает UUID, если не задан
func (t *Teacher) BeforeCreate(_ *gorm.DB) error {
	if t.TeacherID == "" {
		t.TeacherID = uuid.NewString()
	}
	return nil
}

// FullName ФИО одной строкой
func (t *Teacher) FullName() string {
	full := t.Surname
	if t.Name != "" {
		full += " " + t.Name
	}
	if t.Patronymic != "" {
		full += " " + t.Patronymic
	}
	return full
}

// TeacherBurden месячная нагрузка преподавателя — таблица teacher_burdens.
// Month хранится первым числом месяца; сравнение при проверке занятости
// идёт по паре (месяц, год).
type TeacherBurden struct {
	BurdenID  string    `gorm:"type:uuid;primaryKey" json:"burden_id"`
	TeacherID string    `gorm:"type:uuid;not null;uniqueIndex:uq_burden_month" json:"teacher_id"`
	Hours     int       `gorm:"not null;default:0" json:"hours"`
	Month     time.Time `gorm:"type:date;not null;uniqueIndex:uq_burden_month" json:"month"`
	BaseModel
}

// TableName имя таблицы
func (TeacherBurden) TableName() string { return "teacher_burdens" }

// BeforeCreate назначает UUID, если не задан
func (b *TeacherBurden) BeforeCreate(_ *gorm.DB) error {
	if b.BurdenID == "" {
		b.BurdenID = uuid.NewString()
	}
	return nil
}

// SameMonth true, если запись нагрузки относится к месяцу даты d
func (b *TeacherBurden) SameMonth(d time.Time) bool {
	return b.Month.Month() == d.Month() && b.Month.Year() == d.Year()
}
