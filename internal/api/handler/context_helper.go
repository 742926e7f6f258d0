package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/pkg/response"
)

// MustGetUserID извлекает user_id из контекста.
// При ok=false в ответ уже записан 403, вызывающему достаточно return.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Forbidden(c, 10002, "не аутентифицирован")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Forbidden(c, 10002, "не аутентифицирован")
		return "", false
	}
	return s, true
}

// MustGetTokenJTI извлекает идентификатор токена из контекста
func MustGetTokenJTI(c *gin.Context) (string, bool) {
	v, exists := c.Get("token_jti")
	if !exists {
		response.Forbidden(c, 10002, "не аутентифицирован")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Forbidden(c, 10002, "не аутентифицирован")
		return "", false
	}
	return s, true
}

// GetTokenExpiry извлекает срок действия токена из контекста;
// при отсутствии возвращает нулевое время
func GetTokenExpiry(c *gin.Context) time.Time {
	v, exists := c.Get("token_exp")
	if !exists {
		return time.Time{}
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}
	}
	return t
}
