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

// ── ошибки модуля типов занятий ──

var (
	ErrTypeExists   = errors.New("тип занятия с таким названием уже существует")
	ErrTypeNotFound = errors.New("тип занятия не найден")
)

// LessonTypeService бизнес-логика типов занятий
type LessonTypeService interface {
	Add(ctx context.Context, req *dto.AddTypeRequest) (*dto.TypeResponse, error)
	List(ctx context.Context) ([]dto.TypeResponse, error)
	Edit(ctx context.Context, req *dto.EditTypeRequest) (*dto.TypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type lessonTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLessonTypeService создаёт LessonTypeService
func NewLessonTypeService(repo *repository.Repository, logger *zap.Logger) LessonTypeService {
	return &lessonTypeService{repo: repo, logger: logger}
}

func (s *lessonTypeService) Add(ctx context.Context, req *dto.AddTypeRequest) (*dto.TypeResponse, error) {
	if _, err := s.repo.LessonType.GetByName(ctx, req.Name); err == nil {
		return nil, ErrTypeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("ошибка поиска типа занятия", zap.Error(err))
		return nil, err
	}

	lessonType := &model.LessonType{Name: req.Name}

	if err := s.repo.LessonType.Create(ctx, lessonType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTypeExists
		}
		s.logger.Error("ошибка создания типа занятия", zap.Error(err))
		return nil, err
	}

	return s.toTypeResponse(lessonType), nil
}

func (s *lessonTypeService) List(ctx context.Context) ([]dto.TypeResponse, error) {
	types, err := s.repo.LessonType.List(ctx)
	if err != nil {
		s.logger.Error("ошибка выборки типов занятий", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TypeResponse, 0, len(types))
	for i := range types {
		result = append(result, *s.toTypeResponse(&types[i]))
	}
	return result, nil
}

func (s *lessonTypeService) Edit(ctx context.Context, req *dto.EditTypeRequest) (*dto.TypeResponse, error) {
	lessonType, err := s.repo.LessonType.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTypeNotFound
		}
		s.logger.Error("ошибка поиска типа занятия", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	lessonType.Name = req.Name

	if err := s.repo.LessonType.Update(ctx, lessonType); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTypeExists
		}
		s.logger.Error("ошибка обновления типа занятия", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	return s.toTypeResponse(lessonType), nil
}

func (s *lessonTypeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.LessonType.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTypeNotFound
		}
		s.logger.Error("ошибка поиска типа занятия", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.LessonType.Delete(ctx, id); err != nil {
		s.logger.Error("ошибка удаления типа занятия", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *lessonTypeService) toTypeResponse(t *model.LessonType) *dto.TypeResponse {
	return &dto.TypeResponse{ID: t.TypeID, Name: t.Name}
}
