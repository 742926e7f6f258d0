package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/model"
	"github.com/Looz41/Diplom-sub000/internal/repository"
)

// ── ошибки модуля дисциплин ──

var (
	ErrDisciplineExists     = errors.New("дисциплина с таким названием уже существует")
	ErrDisciplineNotFound   = errors.New("дисциплина не найдена")
	ErrDisciplineNoTeachers = errors.New("у дисциплины должен быть хотя бы один преподаватель")
)

// DisciplineService бизнес-логика дисциплин
type DisciplineService interface {
	Add(ctx context.Context, req *dto.AddDisciplineRequest) (*dto.DisciplineResponse, error)
	List(ctx context.Context) ([]dto.DisciplineResponse, error)
	GetByID(ctx context.Context, id string) (*dto.DisciplineResponse, error)
	Edit(ctx context.Context, req *dto.EditDisciplineRequest) (*dto.DisciplineResponse, error)
	Delete(ctx context.Context, id string) error
}

type disciplineService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDisciplineService создаёт DisciplineService
func NewDisciplineService(repo *repository.Repository, logger *zap.Logger) DisciplineService {
	return &disciplineService{repo: repo, logger: logger}
}

// ────────────────────── Add ──────────────────────

// Add создаёт дисциплину; отсутствующие группы и преподаватели
// создаются автоматически через resolve-or-create
func (s *disciplineService) Add(ctx context.Context, req *dto.AddDisciplineRequest) (*dto.DisciplineResponse, error) {
	if len(req.Teachers) == 0 {
		return nil, ErrDisciplineNoTeachers
	}

	if _, err := s.repo.Discipline.GetByName(ctx, req.Name); err == nil {
		return nil, ErrDisciplineExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("ошибка поиска дисциплины", zap.Error(err))
		return nil, err
	}

	groups, teachers, err := s.resolveRefs(ctx, req.Groups, req.Teachers)
	if err != nil {
		return nil, err
	}

	discipline := &model.Discipline{
		Name:          req.Name,
		AcademicHours: req.AH,
		Groups:        groups,
		Teachers:      teachers,
	}

	if err := s.repo.Discipline.Create(ctx, discipline); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDisciplineExists
		}
		s.logger.Error("ошибка создания дисциплины", zap.Error(err))
		return nil, err
	}

	return s.toDisciplineResponse(discipline), nil
}

// ────────────────────── List ──────────────────────

func (s *disciplineService) List(ctx context.Context) ([]dto.DisciplineResponse, error) {
	disciplines, err := s.repo.Discipline.List(ctx)
	if err != nil {
		s.logger.Error("ошибка выборки дисциплин", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DisciplineResponse, 0, len(disciplines))
	for i := range disciplines {
		result = append(result, *s.toDisciplineResponse(&disciplines[i]))
	}
	return result, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *disciplineService) GetByID(ctx context.Context, id string) (*dto.DisciplineResponse, error) {
	discipline, err := s.repo.Discipline.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDisciplineNotFound
		}
		s.logger.Error("ошибка поиска дисциплины", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toDisciplineResponse(discipline), nil
}

// ────────────────────── Edit ──────────────────────

// Edit полная перезапись: название, часы и оба набора связей
func (s *disciplineService) Edit(ctx context.Context, req *dto.EditDisciplineRequest) (*dto.DisciplineResponse, error) {
	if len(req.Teachers) == 0 {
		return nil, ErrDisciplineNoTeachers
	}

	discipline, err := s.repo.Discipline.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDisciplineNotFound
		}
		s.logger.Error("ошибка поиска дисциплины", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	groups, teachers, err := s.resolveRefs(ctx, req.Groups, req.Teachers)
	if err != nil {
		return nil, err
	}

	discipline.Name = req.Name
	discipline.AcademicHours = req.AH
	if err := s.repo.Discipline.Update(ctx, discipline); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDisciplineExists
		}
		s.logger.Error("ошибка обновления дисциплины", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Discipline.ReplaceGroups(ctx, discipline, groups); err != nil {
		s.logger.Error("ошибка замены групп дисциплины", zap.Error(err))
		return nil, err
	}
	if err := s.repo.Discipline.ReplaceTeachers(ctx, discipline, teachers); err != nil {
		s.logger.Error("ошибка замены преподавателей дисциплины", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, discipline.DisciplineID)
}

// ────────────────────── Delete ──────────────────────

func (s *disciplineService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Discipline.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDisciplineNotFound
		}
		s.logger.Error("ошибка поиска дисциплины", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Discipline.Delete(ctx, id); err != nil {
		s.logger.Error("ошибка удаления дисциплины", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── внутренние помощники ──

func (s *disciplineService) resolveRefs(ctx context.Context, groupNames, teacherSurnames []string) ([]model.Group, []model.Teacher, error) {
	groups := make([]model.Group, 0, len(groupNames))
	for _, name := range groupNames {
		group, err := resolveGroup(ctx, s.repo.Group, name, nil)
		if err != nil {
			if errors.Is(err, model.ErrNoCourseMarker) {
				return nil, nil, ErrGroupBadName
			}
			s.logger.Error("ошибка resolve группы", zap.String("name", name), zap.Error(err))
			return nil, nil, err
		}
		groups = append(groups, *group)
	}

	teachers := make([]model.Teacher, 0, len(teacherSurnames))
	for _, surname := range teacherSurnames {
		teacher, err := resolveTeacher(ctx, s.repo.Teacher, surname)
		if err != nil {
			s.logger.Error("ошибка resolve преподавателя", zap.String("surname", surname), zap.Error(err))
			return nil, nil, err
		}
		teachers = append(teachers, *teacher)
	}

	return groups, teachers, nil
}

func (s *disciplineService) toDisciplineResponse(d *model.Discipline) *dto.DisciplineResponse {
	resp := &dto.DisciplineResponse{
		ID:   d.DisciplineID,
		Name: d.Name,
		AH:   d.AcademicHours,
	}
	for _, g := range d.Groups {
		resp.Groups = append(resp.Groups, dto.GroupResponse{
			ID:     g.GroupID,
			Name:   g.Name,
			Course: g.Course,
		})
	}
	for i := range d.Teachers {
		resp.Teachers = append(resp.Teachers, *toTeacherResponse(&d.Teachers[i]))
	}
	return resp
}
