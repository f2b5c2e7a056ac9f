package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

// RequestIDMiddleware добавляет уникальный ID для каждого запроса.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggingMiddleware логирует входящие HTTP запросы и ответы.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetString("request_id")

		c.Next()

		status := c.Writer.Status()
		event := zlog.Logger.Info()
		switch {
		case status >= 500:
			event = zlog.Logger.Error()
		case status >= 400:
			event = zlog.Logger.Warn()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("remote_addr", c.ClientIP()).
			Int("status_code", status).
			Int("response_size", c.Writer.Size()).
			Dur("duration", time.Since(start)).
			Msg("HTTP request completed")
	}
}
