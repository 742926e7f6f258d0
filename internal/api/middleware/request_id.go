package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen ограничивает длину внешнего Request-ID,
// защищает журнал от инъекций
const requestIDMaxLen = 64

// RequestID сквозной идентификатор запроса.
// Берётся из заголовка X-Request-ID, при отсутствии генерируется UUID;
// значение кладётся в контекст и возвращается в ответном заголовке.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
