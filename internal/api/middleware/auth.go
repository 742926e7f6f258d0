package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/pkg/jwt"
	"github.com/Looz41/Diplom-sub000/pkg/redis"
	"github.com/Looz41/Diplom-sub000/pkg/response"
)

// JWTAuth аутентификация по Authorization: Bearer <token>.
// Любой отказ — отсутствующий, испорченный, просроченный или
// отозванный токен — отвечает 403. Отозванность проверяется по
// чёрному списку в Redis; при rdb == nil проверка пропускается.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Forbidden(c, 10002, "отсутствует заголовок авторизации")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Forbidden(c, 10002, "неверный формат заголовка авторизации")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Forbidden(c, 10002, "токен недействителен или истёк")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Forbidden(c, 10002, "токен отозван")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("roles", claims.Roles)
		c.Set("token_jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_exp", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RoleAuth проверяет наличие у пользователя хотя бы одной
// из перечисленных ролей
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("roles")
		if !exists {
			response.Forbidden(c, 10002, "не аутентифицирован")
			c.Abort()
			return
		}

		roles, _ := value.([]string)
		for _, have := range roles {
			for _, want := range allowedRoles {
				if have == want {
					c.Next()
					return
				}
			}
		}

		response.Forbidden(c, 10003, "недостаточно прав")
		c.Abort()
	}
}
