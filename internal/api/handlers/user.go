package handlers

import (
	"net/http"

	"coaching-roster-backend/internal/api/middleware"
	"coaching-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile and storage requests of the signed-in user
type UserHandler struct {
	userService  service.UserServiceInterface
	quotaService service.QuotaServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface, quotaService service.QuotaServiceInterface) *UserHandler {
	return &UserHandler{
		userService:  userService,
		quotaService: quotaService,
	}
}

// UpdateProfile handles PUT /api/auth/users/updateprofile
// @Summary Update profile
// @Description Update username, location or date of birth. An "avatar" file replaces the avatar; deleteAvatar=true removes it.
// @Tags users
// @Accept json,mpfd
// @Produce json
// @Param profile body service.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} service.UserResponse "Updated profile"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 502 {object} ErrorResponse "CDN upload failed"
// @Security BearerAuth
// @Router /api/auth/users/updateprofile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req, middleware.GetUploadedFile(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetStorage handles GET /users/storage
// @Summary Storage usage
// @Description Bytes used by gallery photos across all of the caller's teams
// @Tags users
// @Produce json
// @Success 200 {object} service.StorageQuota "Storage snapshot"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /api/v1/users/storage [get]
func (h *UserHandler) GetStorage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	quota, err := h.quotaService.Snapshot(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quota)
}
