package handlers

import (
	"net/http"
	"strconv"

	"coaching-roster-backend/internal/api/middleware"
	"coaching-roster-backend/internal/repository"
	"coaching-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AthleteHandler handles HTTP requests for athletes
type AthleteHandler struct {
	athleteService service.AthleteServiceInterface
}

// NewAthleteHandler creates a new athlete handler
func NewAthleteHandler(athleteService service.AthleteServiceInterface) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

// CreateAthlete handles POST /athletes
// @Summary Create an athlete
// @Description Create an athlete with previous coaches, medical examinations and relatives. An optional "athlete-avatar" file sets the photo.
// @Tags athletes
// @Accept json,mpfd
// @Produce json
// @Param athlete body service.CreateAthleteRequest true "Athlete data"
// @Success 201 {object} models.Athlete "Successfully created athlete"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 502 {object} ErrorResponse "CDN upload failed"
// @Security BearerAuth
// @Router /api/v1/athletes [post]
func (h *AthleteHandler) CreateAthlete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateAthleteRequest
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	athlete, err := h.athleteService.Create(c.Request.Context(), userID, &req, middleware.GetUploadedFile(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, athlete)
}

// GetAthlete handles GET /athletes/:id
// @Summary Get athlete by ID
// @Tags athletes
// @Produce json
// @Param id path string true "Athlete ID (UUID)"
// @Success 200 {object} models.Athlete "Successfully retrieved athlete"
// @Failure 400 {object} ErrorResponse "Invalid athlete ID"
// @Failure 403 {object} ErrorResponse "Athlete belongs to another user"
// @Failure 404 {object} ErrorResponse "Athlete not found"
// @Security BearerAuth
// @Router /api/v1/athletes/{id} [get]
func (h *AthleteHandler) GetAthlete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	athleteID, ok := pathUUID(c, "id", "athlete")
	if !ok {
		return
	}

	athlete, err := h.athleteService.Get(c.Request.Context(), athleteID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, athlete)
}

// ListAthletes handles GET /athletes
// @Summary List athletes
// @Description List the caller's athletes; unassigned=true keeps only athletes without a team
// @Tags athletes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param unassigned query bool false "Only athletes without a team"
// @Param search query string false "Name filter"
// @Success 200 {object} service.AthleteListResponse "Successfully retrieved athletes"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /api/v1/athletes [get]
func (h *AthleteHandler) ListAthletes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}

	filter := repository.AthleteFilter{Search: c.Query("search")}
	if raw := c.Query("unassigned"); raw != "" {
		unassigned, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unassigned must be true or false"})
			return
		}
		filter.UnassignedOnly = unassigned
	}

	athletes, err := h.athleteService.List(c.Request.Context(), userID, filter, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, athletes)
}
