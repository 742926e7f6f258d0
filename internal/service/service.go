package service

import (
	"go.uber.org/zap"

	"github.com/Looz41/Diplom-sub000/config"
	"github.com/Looz41/Diplom-sub000/internal/repository"
	"github.com/Looz41/Diplom-sub000/pkg/jwt"
	"github.com/Looz41/Diplom-sub000/pkg/redis"
)

// Service агрегат всех сервисов
type Service struct {
	Auth       AuthService
	Faculty    FacultyService
	Discipline DisciplineService
	Teacher    TeacherService
	Audithoria AudithoriaService
	LessonType LessonTypeService
	Schedule   ScheduleService
	Export     ExportService
}

// NewService создаёт агрегат сервисов
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Faculty:    NewFacultyService(repo, logger),
		Discipline: NewDisciplineService(repo, logger),
		Teacher:    NewTeacherService(repo, logger),
		Audithoria: NewAudithoriaService(repo, logger),
		LessonType: NewLessonTypeService(repo, logger),
		Schedule:   NewScheduleService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
