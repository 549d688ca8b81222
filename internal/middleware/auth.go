package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/egasa21/open-music-api-v2/internal/logger"
	"github.com/egasa21/open-music-api-v2/internal/token"
)

// Auth validates the Bearer access token and stores the authenticated
// user id in the request context.
func Auth(tokens *token.Manager, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := tokens.Parse(parts[1], token.TypeAccess)
		if err != nil {
			log.Warn("JWT validation failed",
				logger.String("request_id", GetRequestID(c)),
				logger.String("error", err.Error()),
			)
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "fail",
		"message": message,
	})
}

// GetUserID retrieves the authenticated user id from context.
func GetUserID(c *gin.Context) string {
	return c.GetString("user_id")
}
