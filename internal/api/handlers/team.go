package handlers

import (
	"context"
	"net/http"

	"coaching-roster-backend/internal/api/middleware"
	"coaching-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService       service.TeamServiceInterface
	membershipService service.MembershipServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, membershipService service.MembershipServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		membershipService: membershipService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team with an optional logo and initial roster. Accepts JSON or multipart with a "team-logo" file.
// @Tags teams
// @Accept json,mpfd
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} MembershipErrorResponse "Some athletes cannot join the team"
// @Failure 502 {object} ErrorResponse "CDN upload failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), userID, &req, middleware.GetUploadedFile(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a team with its resolved athletes
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamDetailResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Team belongs to another user"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /api/v1/teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.Get(c.Request.Context(), teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List the caller's teams, newest first, optionally filtered by name
// @Tags teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param name query string false "Case-insensitive name filter"
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Security BearerAuth
// @Router /api/v1/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}

	teams, err := h.teamService.List(c.Request.Context(), userID, c.Query("name"), page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Partially update a team. A present athleteIds list replaces the roster; a "team-logo" file replaces the logo.
// @Tags teams
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Team belongs to another user"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} MembershipErrorResponse "Some athletes cannot join the team"
// @Security BearerAuth
// @Router /api/v1/teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "id", "team")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), teamID, userID, &req, middleware.GetUploadedFile(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team, release its athletes and purge its media
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.DeleteTeamResponse "Successfully deleted team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Team belongs to another user"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /api/v1/teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "id", "team")
	if !ok {
		return
	}

	resp, err := h.teamService.Delete(c.Request.Context(), teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddAthletes handles PATCH /teams/:id/athletes/add
// @Summary Add athletes to a team
// @Description Add unassigned athletes to the roster. Athletes already on this team are ignored.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param request body service.RosterChangeRequest true "Athlete IDs"
// @Success 200 {object} service.RosterChangeResponse "Roster updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} MembershipErrorResponse "Some athletes cannot join the team"
// @Security BearerAuth
// @Router /api/v1/teams/{id}/athletes/add [patch]
func (h *TeamHandler) AddAthletes(c *gin.Context) {
	h.changeRoster(c, h.membershipService.AddAthletes)
}

// RemoveAthletes handles PATCH /teams/:id/athletes/remove
// @Summary Remove athletes from a team
// @Description Remove members from the roster and mark them unassigned
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param request body service.RosterChangeRequest true "Athlete IDs"
// @Success 200 {object} service.RosterChangeResponse "Roster updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} MembershipErrorResponse "Some athletes are not members of the team"
// @Security BearerAuth
// @Router /api/v1/teams/{id}/athletes/remove [patch]
func (h *TeamHandler) RemoveAthletes(c *gin.Context) {
	h.changeRoster(c, h.membershipService.RemoveAthletes)
}

type rosterChangeFunc = func(ctx context.Context, teamID, ownerID uuid.UUID, ids []uuid.UUID) (*service.RosterChangeResponse, error)

func (h *TeamHandler) changeRoster(c *gin.Context, change rosterChangeFunc) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := pathUUID(c, "id", "team")
	if !ok {
		return
	}

	var req service.RosterChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := change(c.Request.Context(), teamID, userID, req.AthleteIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
