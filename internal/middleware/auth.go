package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/config"
	"taskboard/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "userID"

// AuthMiddleware verifies the bearer access token and injects the subject
// ID into the request context. It never touches the database.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(token, cfg.JWT.AccessSecret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)

		c.Next()
	}
}

// GetUserID retrieves the authenticated subject ID from the Gin context.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
