package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/service"
	"github.com/Looz41/Diplom-sub000/pkg/response"
)

// AuthHandler HTTP-обработчики модуля аутентификации
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler создаёт AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register регистрация пользователя
// POST /auth/registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OKMessage(c, "пользователь зарегистрирован", user)
}

// Login вход, выдаёт JWT
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, token)
}

// Logout отзывает текущий токен
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, ok := MustGetTokenJTI(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, GetTokenExpiry(c)); err != nil {
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "выход выполнен", nil)
}

// ListUsers список пользователей
// GET /auth/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authSvc.ListUsers(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"users": users})
}

// ── маппинг ошибок ──

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserExists):
		response.Conflict(c, 11001, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.BadRequest(c, 11002, err.Error())
	case errors.Is(err, service.ErrRoleMissing):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
