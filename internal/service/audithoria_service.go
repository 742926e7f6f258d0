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

// ── ошибки модуля аудиторий ──

var (
	ErrAudithoriaExists   = errors.New("аудитория с таким названием уже существует")
	ErrAudithoriaNotFound = errors.New("аудитория не найдена")
)

// AudithoriaService бизнес-логика аудиторий
type AudithoriaService interface {
	Add(ctx context.Context, req *dto.AddAudithoriaRequest) (*dto.AudithoriaResponse, error)
	List(ctx context.Context) ([]dto.AudithoriaResponse, error)
	Edit(ctx context.Context, req *dto.EditAudithoriaRequest) (*dto.AudithoriaResponse, error)
	Delete(ctx context.Context, id string) error
}

type audithoriaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAudithoriaService создаёт AudithoriaService
func NewAudithoriaService(repo *repository.Repository, logger *zap.Logger) AudithoriaService {
	return &audithoriaService{repo: repo, logger: logger}
}

func (s *audithoriaService) Add(ctx context.Context, req *dto.AddAudithoriaRequest) (*dto.AudithoriaResponse, error) {
	if _, err := s.repo.Audithoria.GetByName(ctx, req.Name); err == nil {
		return nil, ErrAudithoriaExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("ошибка поиска аудитории", zap.Error(err))
		return nil, err
	}

	audithoria := &model.Audithoria{
		Name:           req.Name,
		IsComputerRoom: req.IsComputerRoom,
	}

	if err := s.repo.Audithoria.Create(ctx, audithoria); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAudithoriaExists
		}
		s.logger.Error("ошибка создания аудитории", zap.Error(err))
		return nil, err
	}

	return s.toAudithoriaResponse(audithoria), nil
}

func (s *audithoriaService) List(ctx context.Context) ([]dto.AudithoriaResponse, error) {
	audithorias, err := s.repo.Audithoria.List(ctx)
	if err != nil {
		s.logger.Error("ошибка выборки аудиторий", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AudithoriaResponse, 0, len(audithorias))
	for i := range audithorias {
		result = append(result, *s.toAudithoriaResponse(&audithorias[i]))
	}
	return result, nil
}

func (s *audithoriaService) Edit(ctx context.Context, req *dto.EditAudithoriaRequest) (*dto.AudithoriaResponse, error) {
	audithoria, err := s.repo.Audithoria.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAudithoriaNotFound
		}
		s.logger.Error("ошибка поиска аудитории", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	audithoria.Name = req.Name
	audithoria.IsComputerRoom = req.IsComputerRoom

	if err := s.repo.Audithoria.Update(ctx, audithoria); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAudithoriaExists
		}
		s.logger.Error("ошибка обновления аудитории", zap.String("id", req.ID), zap.Error(err))
		return nil, err
	}

	return s.toAudithoriaResponse(audithoria), nil
}

func (s *audithoriaService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Audithoria.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAudithoriaNotFound
		}
		s.logger.Error("ошибка поиска аудитории", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Audithoria.Delete(ctx, id); err != nil {
		s.logger.Error("ошибка удаления аудитории", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *audithoriaService) toAudithoriaResponse(a *model.Audithoria) *dto.AudithoriaResponse {
	return &dto.AudithoriaResponse{
		ID:             a.AudithoriaID,
		Name:           a.Name,
		IsComputerRoom: a.IsComputerRoom,
	}
}
