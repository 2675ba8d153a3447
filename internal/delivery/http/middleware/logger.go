package middleware

import (
	"log/slog"
	"time"

	"candidate-service/internal/delivery/http/response"
	"candidate-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured line per finished request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger.Log.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("request_id", response.RequestID(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
