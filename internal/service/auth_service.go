package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Looz41/Diplom-sub000/config"
	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/model"
	"github.com/Looz41/Diplom-sub000/internal/repository"
	"github.com/Looz41/Diplom-sub000/pkg/jwt"
	"github.com/Looz41/Diplom-sub000/pkg/redis"
)

// ── ошибки модуля аутентификации ──

var (
	ErrUserExists         = errors.New("пользователь с таким именем уже существует")
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
	ErrRoleMissing        = errors.New("роль не найдена в справочнике")
)

// AuthService бизнес-логика аутентификации
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService создаёт AuthService
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	// 1. уникальность имени
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("ошибка поиска пользователя", zap.Error(err))
		return nil, err
	}

	// 2. хеш пароля
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	// 3. роль по умолчанию — ADMIN.
	// TODO(sub000-41): согласовать с заказчиком, не должна ли роль по
	// умолчанию быть USER; пока сохраняем текущее поведение.
	role, err := s.repo.Role.GetByValue(ctx, model.RoleAdmin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleMissing
		}
		s.logger.Error("ошибка поиска роли", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Roles:        []model.Role{*role},
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		s.logger.Error("ошибка создания пользователя", zap.Error(err))
		return nil, err
	}

	return s.toUserResponse(user), nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("ошибка поиска пользователя", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateToken(user.UserID, user.RoleValues())
	if err != nil {
		s.logger.Error("ошибка выпуска токена", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int(s.cfg.Auth.TokenTTL.Seconds()),
	}, nil
}

// ────────────────────── Logout ──────────────────────

// Logout отзывает токен через чёрный список в Redis.
// Без Redis выход работает в холостую: токен истечёт сам.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

// ────────────────────── ListUsers ──────────────────────

func (s *authService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("ошибка выборки пользователей", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *s.toUserResponse(&users[i]))
	}
	return result, nil
}

// ── внутренние помощники ──

func (s *authService) toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       user.UserID,
		Username: user.Username,
		Roles:    user.RoleValues(),
	}
}
