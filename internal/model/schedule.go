package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule расписание группы на день — таблица schedules
type Schedule struct {
	ScheduleID string    `gorm:"type:uuid;primaryKey" json:"schedule_id"`
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`
	GroupID    string    `gorm:"type:uuid;not null" json:"group_id"`
	BaseModel

	// связи
	Group *Group         `gorm:"foreignKey:GroupID;references:GroupID" json:"group,omitempty"`
	Items []ScheduleItem `gorm:"foreignKey:ScheduleID;references:ScheduleID" json:"items,omitempty"`
}

// TableName имя таблицы
func (Schedule) TableName() string { return "schedules" }

// BeforeCreate назначает UUID, если не задан
func (s *Schedule) BeforeCreate(_ *gorm.DB) error {
	if s.ScheduleID == "" {
		s.ScheduleID = uuid.NewString()
	}
	return nil
}

// ScheduleItem пара в расписании — таблица schedule_items.
// Date дублируется из schedules: на (date, number, teacher_id) и
// (date, number, audithoria_id) держатся уникальные индексы, закрывающие
// гонку между проверкой конфликтов и записью.
type ScheduleItem struct {
	ItemID       string    `gorm:"type:uuid;primaryKey" json:"item_id"`
	ScheduleID   string    `gorm:"type:uuid;not null;index" json:"schedule_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uq_item_teacher;uniqueIndex:uq_item_room" json:"date"`
	Number       int       `gorm:"not null;uniqueIndex:uq_item_teacher;uniqueIndex:uq_item_room" json:"number"`
	DisciplineID string    `gorm:"type:uuid;not null" json:"discipline_id"`
	TeacherID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_item_teacher" json:"teacher_id"`
	TypeID       string    `gorm:"type:uuid;not null" json:"type_id"`
	AudithoriaID string    `gorm:"type:uuid;not null;uniqueIndex:uq_item_room" json:"audithoria_id"`
	BaseModel

	// связи
	Discipline *Discipline `gorm:"foreignKey:DisciplineID;references:DisciplineID" json:"discipline,omitempty"`
	Teacher    *Teacher    `gorm:"foreignKey:TeacherID;references:TeacherID" json:"teacher,omitempty"`
	Type       *LessonType `gorm:"foreignKey:TypeID;references:TypeID" json:"type,omitempty"`
	Audithoria *Audithoria `gorm:"foreignKey:AudithoriaID;references:AudithoriaID" json:"audithoria,omitempty"`
}

// TableName имя таблицы
func (ScheduleItem) TableName() string { return "schedule_items" }

// BeforeCreate назначает UUID, если не задан
func (i *ScheduleItem) BeforeCreate(_ *gorm.DB) error {
	if i.ItemID == "" {
		i.ItemID = uuid.NewString()
	}
	return nil
}
