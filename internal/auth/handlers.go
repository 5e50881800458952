package auth

import (
	"net/http"

	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service Authenticator
	limiter *LoginLimiter
}

// NewAuthHandler creates a new authentication handler. limiter may be nil.
func NewAuthHandler(service Authenticator, limiter *LoginLimiter) *AuthHandler {
	return &AuthHandler{service: service, limiter: limiter}
}

// Register handles POST /api/auth/users/register
// @Summary Register a new user
// @Description Create an account with email, password and username
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "User already exists"
// @Router /api/auth/users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/users/login
// @Summary Sign in
// @Description Exchange email and password for a session token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 429 {object} map[string]interface{} "Too many attempts"
// @Router /api/auth/users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if h.limiter != nil {
		h.limiter.Reset(c.ClientIP(), req.Email)
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/users/logout
// @Summary Sign out
// @Description Invalidate the current session token
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthLogoutResponse
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /api/auth/users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "User logged out successfully"})
}

// Current handles GET /api/auth/users/current
// @Summary Current user
// @Description Return the signed-in user's email and username
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CurrentUserResponse
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /api/auth/users/current [get]
func (h *AuthHandler) Current(c *gin.Context) {
	user, ok := GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, CurrentUserResponse{Email: user.Email, Username: user.Username})
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Auth request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
