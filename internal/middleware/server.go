package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/contextkeys"
)

// RequestIDMiddleware assigns every request an id, honoring one the client
// already sent, and echoes it back in X-Request-ID.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

// LoggingMiddleware logs one line per request with method, path, status and
// latency. Server errors log at error level, client errors at warn.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			logger.CtxError(ctx, "Request completed", fields...)
		case status >= 400:
			logger.CtxWarn(ctx, "Request completed", fields...)
		default:
			logger.CtxInfo(ctx, "Request completed", fields...)
		}
	}
}

// CORSMiddleware allows browser clients from any origin. The API has no
// cookie auth, so a permissive policy is safe here.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// DBMiddleware stores the DB handle for the request. When the request
// context already carries one (tests inject a transaction this way), that
// handle wins over the shared pool.
func DBMiddleware(pool *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := pool
		if injected, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB); ok {
			db = injected
		}
		c.Set(string(contextkeys.DBContextKey), db)

		c.Next()
	}
}
