package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/egasa21/open-music-api-v2/internal/logger"
)

// Logging middleware logs HTTP requests with structured information.
func Logging(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fields := []logger.Field{
			logger.String("request_id", GetRequestID(c)),
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.String("query", query),
			logger.Int("status", statusCode),
			logger.String("ip", c.ClientIP()),
			logger.Int64("latency_ms", latency.Milliseconds()),
		}

		if userID, exists := c.Get("user_id"); exists {
			if uid, ok := userID.(string); ok {
				fields = append(fields, logger.String("user_id", uid))
			}
		}

		if statusCode >= 500 {
			if len(c.Errors) > 0 {
				fields = append(fields, logger.String("error", c.Errors.String()))
			}
			log.Error("HTTP request failed with server error", fields...)
		} else if statusCode >= 400 {
			log.Warn("HTTP request failed with client error", fields...)
		} else {
			log.Info("HTTP request completed", fields...)
		}
	}
}
