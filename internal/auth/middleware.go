package auth

import (
	"net/http"
	"strings"

	"coaching-roster-backend/internal/database/models"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by RequireAuth
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "email"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service Authenticator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service Authenticator) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token against the stored session and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token not provided"})
			c.Abort()
			return
		}

		user, err := m.service.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if apperrors.IsAuthentication(err) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			} else {
				logger.WithContext(c.Request.Context()).WithError(err).Error("Authentication failed")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			}
			c.Abort()
			return
		}

		// Set user context
		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextEmailKey, user.Email)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), user.Email))

		c.Next()
	}
}

// GetUserID is a helper function to extract the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUser is a helper function to extract the authenticated user from context
func GetUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}

	u, ok := user.(*models.User)
	return u, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextEmailKey)
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}
