package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/model"
	"github.com/Looz41/Diplom-sub000/internal/repository"
)

// ── ошибки модуля факультетов ──

var (
	ErrFacultyExists   = errors.New("факультет с таким названием уже существует")
	ErrFacultyNotFound = errors.New("факультет не найден")
	ErrGroupBadName    = errors.New("название группы не содержит маркер курса")
)

// FacultyService бизнес-логика факультетов
type FacultyService interface {
	Add(ctx context.Context, req *dto.AddFacultyRequest) (*dto.FacultyResponse, error)
	GetAll(ctx context.Context) ([]dto.FacultyResponse, error)
	GetOne(ctx context.Context, id string) (*dto.FacultyResponse, error)
	Edit(ctx context.Context, req *dto.EditFacultyRequest) (*dto.FacultyResponse, error)
	Delete(ctx context.Context, id string) error
}

type facultyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFacultyService создаёт FacultyService
func NewFacultyService(repo *repository.Repository, logger *zap.Logger) FacultyService {
	return &facultyService{repo: repo, logger: logger}
}

// ────────────────────── Add ──────────────────────

func (s *facultyService) Add(ctx context.Context, req *dto.AddFacultyRequest) (*dto.FacultyResponse, error) {
	// уникальность названия
	if _, err := s.repo.Faculty.GetByName(ctx, req.Name); err == nil {
		return nil, ErrFacultyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("ошибка поиска факультета", zap.Error(err))
		return nil, err
	}

	// названия групп проверяются до записи — при ошибке не создаётся ничего
	for _, name := range req.Groups {
		if _, err := model.CourseFromName(name); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrGroupBadName, name)
		}
	}

	faculty := &model.Faculty{Name: req.Name}
	if err := s.repo.Faculty.Create(ctx, faculty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrFacultyExists
		}
		s.logger.Error("ошибка создания факультета", zap.Error(err))
		return nil, err
	}

	for _, name := range req.Groups {
		group, err := resolveGroup(ctx, s.repo.Group, name, &faculty.FacultyID)
		if err != nil {
			s.logger.Error("ошибка создания группы", zap.String("name", name), zap.Error(err))
			return nil, err
		}
		// существующая группа без факультета переподвязывается
		if group.FacultyID == nil {
			group.FacultyID = &faculty.FacultyID
			if err := s.repo.Group.Update(ctx, group); err != nil {
				s.logger.Error("ошибка привязки группы", zap.String("name", name), zap.Error(err))
				return nil, err
			}
		}
	}

	return s.GetOne(ctx, faculty.FacultyID)
}

// ────────────────────── GetAll ──────────────────────

func (s *facultyService) GetAll(ctx context.Context) ([]dto.FacultyResponse, error) {
	faculties, err := s.repo.Faculty.List(ctx)
	if err != nil {
		s.logger.Error("ошибка выборки факультетов", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FacultyResponse, 0, len(faculties))
	for i := range faculties {
		result = append(result, *s.toFacultyResponse(&faculties[i]))
	}
	return result, nil
}

// ────────────────────── GetOne ──────────────────────

func (s *facultyService) GetOne(ctx context.Context, id string) (*dto.FacultyResponse, error) {
	faculty, err := s.repo.Faculty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("ошибка поиска факультета", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toFacultyResponse(faculty), nil
}

// ────────────────────── Edit ──────────────────────

// Edit полная перезапись: название и состав групп заменяются целиком
func (s *facultyService) Edit(ctx context.Context, req *dto.EditFacultyRequest) (*dto.FacultyResponse, error) {
	faculty, err := s.repo.Faculty.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("ошибка поиска факультета", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	for _, name := range req.Groups {
		if _, err := model.CourseFromName(name); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrGroupBadName, name)
		}
	}

	faculty.Name = req.Name
	faculty.Groups = nil
	if err := s.repo.Faculty.Update(ctx, faculty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrFacultyExists
		}
		s.logger.Error("ошибка обновления факультета", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Group.DetachFromFaculty(ctx, faculty.FacultyID); err != nil {
		s.logger.Error("ошибка отвязки групп", zap.Error(err))
		return nil, err
	}
	for _, name := range req.Groups {
		group, err := resolveGroup(ctx, s.repo.Group, name, &faculty.FacultyID)
		if err != nil {
			s.logger.Error("ошибка создания группы", zap.String("name", name), zap.Error(err))
			return nil, err
		}
		if group.FacultyID == nil || *group.FacultyID != faculty.FacultyID {
			group.FacultyID = &faculty.FacultyID
			if err := s.repo.Group.Update(ctx, group); err != nil {
				return nil, err
			}
		}
	}

	return s.GetOne(ctx, faculty.FacultyID)
}

// ────────────────────── Delete ──────────────────────

func (s *facultyService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Faculty.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacultyNotFound
		}
		s.logger.Error("ошибка поиска факультета", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Faculty.Delete(ctx, id); err != nil {
		s.logger.Error("ошибка удаления факультета", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── внутренние помощники ──

// toFacultyResponse группирует группы факультета по курсам
func (s *facultyService) toFacultyResponse(faculty *model.Faculty) *dto.FacultyResponse {
	byCourse := make(map[int][]dto.GroupResponse)
	for _, g := range faculty.Groups {
		byCourse[g.Course] = append(byCourse[g.Course], dto.GroupResponse{
			ID:     g.GroupID,
			Name:   g.Name,
			Course: g.Course,
		})
	}

	courses := make([]int, 0, len(byCourse))
	for c := range byCourse {
		courses = append(courses, c)
	}
	sort.Ints(courses)

	resp := &dto.FacultyResponse{
		ID:      faculty.FacultyID,
		Name:    faculty.Name,
		Courses: make([]dto.CourseResponse, 0, len(courses)),
	}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, dto.CourseResponse{
			Name:   fmt.Sprintf("%d курс", c),
			Groups: byCourse[c],
		})
	}
	return resp
}
