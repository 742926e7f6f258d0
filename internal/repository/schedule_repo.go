package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/model"
)

// ScheduleFilter фильтр выборки расписаний: все поля необязательны,
// заданные комбинируются по AND
type ScheduleFilter struct {
	Date      *time.Time
	TeacherID string
	GroupID   string
}

// ScheduleRepository доступ к расписаниям
type ScheduleRepository interface {
	CreateWithItems(ctx context.Context, schedule *model.Schedule) error
	GetByID(ctx context.Context, id string) (*model.Schedule, error)
	List(ctx context.Context, filter ScheduleFilter) ([]model.Schedule, error)
	ListItemsByDate(ctx context.Context, date time.Time) ([]model.ScheduleItem, error)
	ReplaceWithItems(ctx context.Context, schedule *model.Schedule) error
	Delete(ctx context.Context, id string) error
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo создаёт ScheduleRepository
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

// CreateWithItems сохраняет расписание вместе с парами одной транзакцией:
// при нарушении уникального индекса (гонка двух одновременных добавлений)
// не записывается ничего
func (r *scheduleRepo) CreateWithItems(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := schedule.Items
		schedule.Items = nil
		if err := tx.Create(schedule).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ScheduleID = schedule.ScheduleID
			items[i].Date = schedule.Date
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		schedule.Items = items
		return nil
	})
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.preloaded(r.db.WithContext(ctx)).
		Where("schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepo) List(ctx context.Context, filter ScheduleFilter) ([]model.Schedule, error) {
	db := r.preloaded(r.db.WithContext(ctx))

	if filter.Date != nil {
		db = db.Where("date = ?", filter.Date.Format("2006-01-02"))
	}
	if filter.GroupID != "" {
		db = db.Where("group_id = ?", filter.GroupID)
	}
	if filter.TeacherID != "" {
		sub := r.db.WithContext(ctx).Model(&model.ScheduleItem{}).
			Select("schedule_id").
			Where("teacher_id = ?", filter.TeacherID)
		db = db.Where("schedule_id IN (?)", sub)
	}

	var schedules []model.Schedule
	err := db.Order("date ASC").Find(&schedules).Error
	return schedules, err
}

// ListItemsByDate пары всех групп на дату — вход проверки конфликтов
func (r *scheduleRepo) ListItemsByDate(ctx context.Context, date time.Time) ([]model.ScheduleItem, error) {
	var items []model.ScheduleItem
	err := r.db.WithContext(ctx).
		Where("date = ?", date.Format("2006-01-02")).
		Find(&items).Error
	return items, err
}

// ReplaceWithItems полная перезапись расписания: дата, группа и состав пар
// заменяются одной транзакцией
func (r *scheduleRepo) ReplaceWithItems(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", schedule.ScheduleID).
			Delete(&model.ScheduleItem{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Schedule{}).
			Where("schedule_id = ?", schedule.ScheduleID).
			Updates(map[string]interface{}{
				"date":     schedule.Date,
				"group_id": schedule.GroupID,
			}).Error; err != nil {
			return err
		}
		items := schedule.Items
		for i := range items {
			items[i].ItemID = ""
			items[i].ScheduleID = schedule.ScheduleID
			items[i].Date = schedule.Date
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("schedule_id = ?", id).
		Delete(&model.Schedule{}).Error
}

func (r *scheduleRepo) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Group").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("schedule_items.number ASC")
		}).
		Preload("Items.Discipline").
		Preload("Items.Teacher").
		Preload("Items.Type").
		Preload("Items.Audithoria")
}
