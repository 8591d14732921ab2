package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// TokenValidator validates a bearer token and returns the authenticated
// user id. Validation includes the revocation check against the sessions
// table, so a signed but signed-out token is rejected.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// Auth returns a middleware that requires a valid bearer token and puts
// the caller's user id into the request context.
func Auth(validator TokenValidator, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			unauthorized(c, "invalid authorization header format")
			return
		}

		userID, err := validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			logger.Debugw("token validation failed", "error", err)
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id from the gin context.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	return userID, userID != ""
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
