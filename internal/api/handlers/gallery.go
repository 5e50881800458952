package handlers

import (
	"net/http"

	"coaching-roster-backend/internal/api/middleware"
	"coaching-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GalleryHandler handles HTTP requests for team galleries
type GalleryHandler struct {
	galleryService service.GalleryServiceInterface
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(galleryService service.GalleryServiceInterface) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// UploadPhoto handles POST /teams/:id/gallery
// @Summary Upload a gallery photo
// @Description Upload one image in the "photo" field. The photo is prepended to the gallery.
// @Tags gallery
// @Accept mpfd
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param photo formData file true "Image (jpeg, png or webp)"
// @Success 201 {object} service.UploadPhotoResponse "Photo uploaded"
// @Failure 400 {object} ErrorResponse "No file or invalid file"
// @Failure 403 {object} ErrorResponse "Team belongs to another user"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 413 {object} QuotaErrorResponse "File too large or storage limit exceeded"
// @Failure 502 {object} ErrorResponse "CDN upload failed"
// @Security BearerAuth
// @Router /api/v1/teams/{id}/gallery [post]
func (h *GalleryHandler) UploadPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "id", "team")
	if !ok {
		return
	}

	resp, err := h.galleryService.Upload(c.Request.Context(), teamID, userID, middleware.GetUploadedFile(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// DeletePhoto handles DELETE /teams/:id/gallery/:photoId
// @Summary Delete a gallery photo
// @Tags gallery
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param photoId path string true "Photo ID (UUID)"
// @Success 200 {object} service.DeletePhotoResponse "Photo deleted"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Team belongs to another user"
// @Failure 404 {object} ErrorResponse "Team or photo not found"
// @Security BearerAuth
// @Router /api/v1/teams/{id}/gallery/{photoId} [delete]
func (h *GalleryHandler) DeletePhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "id", "team")
	if !ok {
		return
	}
	photoID, ok := pathUUID(c, "photoId", "photo")
	if !ok {
		return
	}

	resp, err := h.galleryService.Delete(c.Request.Context(), teamID, photoID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPhotos handles GET /teams/:id/gallery
// @Summary List gallery photos
// @Description One page of the gallery, newest first
// @Tags gallery
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} service.GalleryPage "Gallery page"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Team belongs to another user"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /api/v1/teams/{id}/gallery [get]
func (h *GalleryHandler) ListPhotos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "id", "team")
	if !ok {
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}

	resp, err := h.galleryService.List(c.Request.Context(), teamID, userID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
