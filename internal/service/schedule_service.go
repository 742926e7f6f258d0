package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/model"
	"github.com/Looz41/Diplom-sub000/internal/repository"
)

// ── ошибки модуля расписаний ──

var (
	ErrScheduleNotFound   = errors.New("расписание не найдено")
	ErrGroupNotFound      = errors.New("группа не найдена")
	ErrScheduleConflict   = errors.New("конфликт расписания: преподаватель или аудитория заняты в этой паре")
	ErrTeacherNotTeaching = errors.New("преподаватель не ведёт дисциплину")
)

// часы, начисляемые преподавателю за одну пару
const hoursPerLesson = 2

// ScheduleService бизнес-логика расписаний
type ScheduleService interface {
	Add(ctx context.Context, req *dto.AddScheduleRequest) (*dto.ScheduleResponse, error)
	List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, error)
	Edit(ctx context.Context, req *dto.EditScheduleRequest) (*dto.ScheduleResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService создаёт ScheduleService
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

// ────────────────────── Add ──────────────────────

// Add создаёт расписание группы на день.
//
// Порядок проверок:
//  1. каждая пара: преподаватель закреплён за дисциплиной;
//  2. конфликты внутри переданного списка пар;
//  3. конфликты с уже сохранёнными парами на эту дату
//     (совпадение номера пары и преподавателя либо аудитории).
//
// Неудача любой проверки отклоняет заявку целиком — в БД не пишется
// ничего. Остаточную гонку проверка-запись закрывают уникальные
// индексы schedule_items: нарушение транслируется в тот же конфликт.
// После успешной записи каждому преподавателю начисляется по 2 часа
// за пару и пополняется его месячная нагрузка.
func (s *scheduleService) Add(ctx context.Context, req *dto.AddScheduleRequest) (*dto.ScheduleResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrBadDate
	}

	group, err := s.repo.Group.GetByID(ctx, req.Group)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("ошибка поиска группы", zap.String("id", req.Group), zap.Error(err))
		return nil, err
	}

	items, err := s.validateItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	if err := s.checkConflicts(ctx, date, req.Items, ""); err != nil {
		return nil, err
	}

	schedule := &model.Schedule{
		Date:    date,
		GroupID: group.GroupID,
		Items:   items,
	}

	if err := s.repo.Schedule.CreateWithItems(ctx, schedule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrScheduleConflict
		}
		s.logger.Error("ошибка сохранения расписания", zap.Error(err))
		return nil, err
	}

	s.accrueTeacherHours(ctx, date, items)

	return s.getResponse(ctx, schedule.ScheduleID)
}

// ────────────────────── List ──────────────────────

func (s *scheduleService) List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, error) {
	filter := repository.ScheduleFilter{
		TeacherID: req.Teacher,
		GroupID:   req.Group,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrBadDate
		}
		filter.Date = &date
	}

	schedules, err := s.repo.Schedule.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка выборки расписаний", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		result = append(result, *s.toScheduleResponse(&schedules[i]))
	}
	return result, nil
}

// ────────────────────── Edit ──────────────────────

// Edit полная перезапись расписания: дата, группа и состав пар.
// Конфликты проверяются заново, пары самого расписания из проверки
// исключаются. Часы преподавателям повторно не начисляются.
func (s *scheduleService) Edit(ctx context.Context, req *dto.EditScheduleRequest) (*dto.ScheduleResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrBadDate
	}

	schedule, err := s.repo.Schedule.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("ошибка поиска расписания", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	group, err := s.repo.Group.GetByID(ctx, req.Group)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		s.logger.Error("ошибка поиска группы", zap.String("id", req.Group), zap.Error(err))
		return nil, err
	}

	items, err := s.validateItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	if err := s.checkConflicts(ctx, date, req.Items, schedule.ScheduleID); err != nil {
		return nil, err
	}

	schedule.Date = date
	schedule.GroupID = group.GroupID
	schedule.Items = items

	if err := s.repo.Schedule.ReplaceWithItems(ctx, schedule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrScheduleConflict
		}
		s.logger.Error("ошибка перезаписи расписания", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	return s.getResponse(ctx, schedule.ScheduleID)
}

// ── проверки ──

// validateItems проверяет ссылки каждой пары и предусловие
// "преподаватель ведёт дисциплину"
func (s *scheduleService) validateItems(ctx context.Context, items []dto.ScheduleItemRequest) ([]model.ScheduleItem, error) {
	result := make([]model.ScheduleItem, 0, len(items))
	for _, item := range items {
		discipline, err := s.repo.Discipline.GetByID(ctx, item.Discipline)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDisciplineNotFound
			}
			s.logger.Error("ошибка поиска дисциплины", zap.String("id", item.Discipline), zap.Error(err))
			return nil, err
		}

		teacher, err := s.repo.Teacher.GetByID(ctx, item.Teacher)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeacherNotFound
			}
			s.logger.Error("ошибка поиска преподавателя", zap.String("id", item.Teacher), zap.Error(err))
			return nil, err
		}

		if !discipline.HasTeacher(teacher.TeacherID) {
			return nil, fmt.Errorf("%w: %s — %s", ErrTeacherNotTeaching, teacher.FullName(), discipline.Name)
		}

		if _, err := s.repo.LessonType.GetByID(ctx, item.Type); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTypeNotFound
			}
			s.logger.Error("ошибка поиска типа занятия", zap.String("id", item.Type), zap.Error(err))
			return nil, err
		}
		if _, err := s.repo.Audithoria.GetByID(ctx, item.Audithoria); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAudithoriaNotFound
			}
			s.logger.Error("ошибка поиска аудитории", zap.String("id", item.Audithoria), zap.Error(err))
			return nil, err
		}

		result = append(result, model.ScheduleItem{
			Number:       item.Number,
			DisciplineID: item.Discipline,
			TeacherID:    item.Teacher,
			TypeID:       item.Type,
			AudithoriaID: item.Audithoria,
		})
	}
	return result, nil
}

// checkConflicts ищет двойное бронирование преподавателя или аудитории:
// сперва внутри переданного списка, затем против сохранённых пар на дату.
// excludeScheduleID исключает из проверки пары перезаписываемого
// расписания (пустая строка — ничего не исключать).
func (s *scheduleService) checkConflicts(ctx context.Context, date time.Time, items []dto.ScheduleItemRequest, excludeScheduleID string) error {
	// конфликты внутри заявки
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if items[i].Number != items[j].Number {
				continue
			}
			if items[i].Teacher == items[j].Teacher || items[i].Audithoria == items[j].Audithoria {
				return ErrScheduleConflict
			}
		}
	}

	if len(items) == 0 {
		return nil
	}

	// конфликты с уже сохранёнными парами
	stored, err := s.repo.Schedule.ListItemsByDate(ctx, date)
	if err != nil {
		s.logger.Error("ошибка выборки пар на дату", zap.Error(err))
		return err
	}

	for _, st := range stored {
		if excludeScheduleID != "" && st.ScheduleID == excludeScheduleID {
			continue
		}
		for _, item := range items {
			if st.Number != item.Number {
				continue
			}
			if st.TeacherID == item.Teacher || st.AudithoriaID == item.Audithoria {
				return ErrScheduleConflict
			}
		}
	}

	return nil
}

// ── побочные эффекты ──

// accrueTeacherHours начисляет hH и пополняет месячную нагрузку после
// принятого расписания. Начисление не атомарно с записью расписания;
// отказ здесь логируется, но уже принятое расписание не откатывает.
func (s *scheduleService) accrueTeacherHours(ctx context.Context, date time.Time, items []model.ScheduleItem) {
	perTeacher := make(map[string]int)
	for _, item := range items {
		perTeacher[item.TeacherID] += hoursPerLesson
	}

	for teacherID, hours := range perTeacher {
		if err := s.repo.Teacher.AddAccumulatedHours(ctx, teacherID, hours); err != nil {
			s.logger.Error("ошибка начисления часов",
				zap.String("teacher_id", teacherID), zap.Error(err))
			continue
		}
		if err := s.repo.Teacher.UpsertBurden(ctx, teacherID, date, hours); err != nil {
			s.logger.Error("ошибка пополнения нагрузки",
				zap.String("teacher_id", teacherID), zap.Error(err))
		}
	}
}

// ── внутренние помощники ──

func (s *scheduleService) getResponse(ctx context.Context, id string) (*dto.ScheduleResponse, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка чтения расписания", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toScheduleResponse(schedule), nil
}

func (s *scheduleService) toScheduleResponse(schedule *model.Schedule) *dto.ScheduleResponse {
	resp := &dto.ScheduleResponse{
		ID:    schedule.ScheduleID,
		Date:  schedule.Date.Format("2006-01-02"),
		Items: make([]dto.ScheduleItemResponse, 0, len(schedule.Items)),
	}
	if schedule.Group != nil {
		resp.Group = dto.GroupResponse{
			ID:     schedule.Group.GroupID,
			Name:   schedule.Group.Name,
			Course: schedule.Group.Course,
		}
	}
	for _, item := range schedule.Items {
		ir := dto.ScheduleItemResponse{
			ID:     item.ItemID,
			Number: item.Number,
		}
		if item.Discipline != nil {
			ir.Discipline = dto.DisciplineResponse{
				ID:   item.Discipline.DisciplineID,
				Name: item.Discipline.Name,
				AH:   item.Discipline.AcademicHours,
			}
		}
		if item.Teacher != nil {
			ir.Teacher = *toTeacherResponse(item.Teacher)
		}
		if item.Type != nil {
			ir.Type = dto.TypeResponse{ID: item.Type.TypeID, Name: item.Type.Name}
		}
		if item.Audithoria != nil {
			ir.Audithoria = dto.AudithoriaResponse{
				ID:             item.Audithoria.AudithoriaID,
				Name:           item.Audithoria.Name,
				IsComputerRoom: item.Audithoria.IsComputerRoom,
			}
		}
		resp.Items = append(resp.Items, ir)
	}
	return resp
}
