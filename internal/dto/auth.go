package dto

// ── аутентификация: запросы ──

// RegisterRequest регистрация пользователя
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest вход в систему
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ── аутентификация: ответы ──

// TokenResponse выданный токен
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // срок действия в секундах
}

// UserResponse пользователь (без пароля)
type UserResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}
