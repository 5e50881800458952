package service

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"coaching-roster-backend/internal/cdn"
	"coaching-roster-backend/internal/database/models"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/logger"
	"coaching-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

// DefaultTeamPageSize is the number of teams per list page
const DefaultTeamPageSize = 5

// purgeConcurrency bounds parallel CDN deletes when a team is removed
const purgeConcurrency = 4

// TeamService handles business logic for teams
type TeamService struct {
	teamRepo    repository.TeamRepositoryInterface
	athleteRepo repository.AthleteRepositoryInterface
	tx          repository.TransactorInterface
	membership  *MembershipService
	store       cdn.ObjectStore
	validator   *validator.Validate
	pageSize    int
}

// NewTeamService creates a new team service
func NewTeamService(teamRepo repository.TeamRepositoryInterface, athleteRepo repository.AthleteRepositoryInterface, tx repository.TransactorInterface, membership *MembershipService, store cdn.ObjectStore, validator *validator.Validate, pageSize int) *TeamService {
	if pageSize <= 0 {
		pageSize = DefaultTeamPageSize
	}
	return &TeamService{
		teamRepo:    teamRepo,
		athleteRepo: athleteRepo,
		tx:          tx,
		membership:  membership,
		store:       store,
		validator:   validator,
		pageSize:    pageSize,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string      `json:"name" validate:"required,min=1,max=100"`
	AgeCategory string      `json:"ageCategory" validate:"required,min=1,max=50"`
	AthleteIDs  []uuid.UUID `json:"athleteIds"`
}

// UpdateTeamRequest represents the request to update a team. A present
// athleteIds list replaces the whole roster.
type UpdateTeamRequest struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	AgeCategory *string      `json:"ageCategory,omitempty" validate:"omitempty,min=1,max=50"`
	AthleteIDs  *[]uuid.UUID `json:"athleteIds,omitempty"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	Name         string      `json:"name"`
	AgeCategory  string      `json:"ageCategory"`
	AthleteIDs   []uuid.UUID `json:"athleteIds"`
	Logo         string      `json:"logo,omitempty"`
	GalleryCount int         `json:"galleryCount"`
	Version      int64       `json:"version"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
}

// AthleteSummary is the short athlete view embedded in team details
type AthleteSummary struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	MiddleName string    `json:"middleName,omitempty"`
	Photo      string    `json:"photo,omitempty"`
}

// TeamDetailResponse is a team together with its resolved athletes
type TeamDetailResponse struct {
	TeamResponse
	Athletes []AthleteSummary `json:"athletes"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams      []TeamResponse `json:"teams"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// DeleteTeamResponse reports the side effects of a team deletion
type DeleteTeamResponse struct {
	ID               uuid.UUID `json:"id"`
	UnlinkedAthletes int64     `json:"unlinkedAthletes"`
	PurgedObjects    int       `json:"purgedObjects"`
	FailedPurges     int       `json:"failedPurges"`
}

// Create creates a team, optionally with a logo and an initial roster
func (s *TeamService) Create(ctx context.Context, ownerID uuid.UUID, req *CreateTeamRequest, logo *cdn.File) (*TeamResponse, error) {
	// Validate request
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	uploaded, err := s.uploadLogo(ctx, ownerID, logo)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      ownerID,
		Name:        req.Name,
		AgeCategory: req.AgeCategory,
		AthleteIDs:  datatypes.JSONSlice[uuid.UUID]{},
		Gallery:     datatypes.JSONSlice[models.Photo]{},
		Version:     1,
	}
	if uploaded != nil {
		team.Logo = uploaded.URL
		team.LogoPublicID = uploaded.PublicID
	}

	err = s.tx.WithinTransaction(ctx, func(repos repository.Repositories) error {
		if err := s.membership.AssignRoster(ctx, repos, team, req.AthleteIDs, ownerID); err != nil {
			return err
		}
		if err := repos.Teams.Create(ctx, team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		return nil
	})
	if err != nil {
		if uploaded != nil {
			s.destroyBestEffort(ctx, uploaded.PublicID)
		}
		return nil, err
	}

	logger.WithContext(ctx).WithField("team_id", team.ID).Info("Team created")
	return s.convertToResponse(team), nil
}

// Update changes team attributes, roster and logo
func (s *TeamService) Update(ctx context.Context, teamID, ownerID uuid.UUID, req *UpdateTeamRequest, logo *cdn.File) (*TeamResponse, error) {
	// Validate request
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if req.Name == nil && req.AgeCategory == nil && req.AthleteIDs == nil && logo == nil {
		return nil, apperrors.ErrNothingToUpdate
	}

	// Check access before paying for an upload
	if _, err := s.getOwned(ctx, teamID, ownerID); err != nil {
		return nil, err
	}

	uploaded, err := s.uploadLogo(ctx, ownerID, logo)
	if err != nil {
		return nil, err
	}

	var team *models.Team
	var oldLogo string
	err = s.tx.WithinTransaction(ctx, func(repos repository.Repositories) error {
		locked, err := lockOwnedTeam(ctx, repos, teamID, ownerID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			locked.Name = *req.Name
		}
		if req.AgeCategory != nil {
			locked.AgeCategory = *req.AgeCategory
		}
		if req.AthleteIDs != nil {
			if err := s.membership.AssignRoster(ctx, repos, locked, *req.AthleteIDs, ownerID); err != nil {
				return err
			}
		}
		if uploaded != nil {
			oldLogo = locked.LogoPublicID
			locked.Logo = uploaded.URL
			locked.LogoPublicID = uploaded.PublicID
		}

		locked.Version++
		if err := repos.Teams.Update(ctx, locked); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		team = locked
		return nil
	})
	if err != nil {
		if uploaded != nil {
			s.destroyBestEffort(ctx, uploaded.PublicID)
		}
		return nil, err
	}

	if oldLogo != "" {
		s.destroyBestEffort(ctx, oldLogo)
	}

	return s.convertToResponse(team), nil
}

// Get returns a team with summaries of the caller's athletes on its roster
func (s *TeamService) Get(ctx context.Context, teamID, ownerID uuid.UUID) (*TeamDetailResponse, error) {
	team, err := s.getOwned(ctx, teamID, ownerID)
	if err != nil {
		return nil, err
	}

	athletes, err := s.athleteRepo.GetByIDs(ctx, team.AthleteIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load athletes: %w", err)
	}
	byID := indexAthletes(athletes)

	summaries := make([]AthleteSummary, 0, len(team.AthleteIDs))
	for _, id := range team.AthleteIDs {
		athlete, ok := byID[id]
		if !ok || athlete.UserID != ownerID {
			continue
		}
		summaries = append(summaries, AthleteSummary{
			ID:         athlete.ID,
			FirstName:  athlete.FirstName,
			LastName:   athlete.LastName,
			MiddleName: athlete.MiddleName,
			Photo:      athlete.Photo,
		})
	}

	return &TeamDetailResponse{
		TeamResponse: *s.convertToResponse(team),
		Athletes:     summaries,
	}, nil
}

// List returns one page of the caller's teams, newest first
func (s *TeamService) List(ctx context.Context, ownerID uuid.UUID, name string, page int) (*TeamListResponse, error) {
	page = normalizePage(page)
	offset := pageOffset(page, s.pageSize)

	teams, total, err := s.teamRepo.ListByUser(ctx, ownerID, name, s.pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.convertToResponse(&teams[i])
	}

	return &TeamListResponse{
		Teams:      responses,
		Total:      total,
		Page:       page,
		PageSize:   s.pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(s.pageSize))),
	}, nil
}

// Delete unlinks the roster, deletes the team and then purges its CDN objects.
// Purge failures are logged and counted but never fail the call.
func (s *TeamService) Delete(ctx context.Context, teamID, ownerID uuid.UUID) (*DeleteTeamResponse, error) {
	var team *models.Team
	var unlinked int64
	err := s.tx.WithinTransaction(ctx, func(repos repository.Repositories) error {
		locked, err := lockOwnedTeam(ctx, repos, teamID, ownerID)
		if err != nil {
			return err
		}

		unlinked, err = repos.Athletes.UnlinkFromTeam(ctx, locked.AthleteIDs, locked.ID)
		if err != nil {
			return fmt.Errorf("failed to unassign athletes: %w", err)
		}
		if err := repos.Teams.Delete(ctx, locked.ID); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		team = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	publicIDs := make([]string, 0, len(team.Gallery)+1)
	for _, photo := range team.Gallery {
		publicIDs = append(publicIDs, photo.PublicID)
	}
	if team.LogoPublicID != "" {
		publicIDs = append(publicIDs, team.LogoPublicID)
	}
	failed := s.purge(context.WithoutCancel(ctx), publicIDs)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":       team.ID,
		"unlinked":      unlinked,
		"purged":        len(publicIDs) - failed,
		"failed_purges": failed,
	}).Info("Team deleted")

	return &DeleteTeamResponse{
		ID:               team.ID,
		UnlinkedAthletes: unlinked,
		PurgedObjects:    len(publicIDs) - failed,
		FailedPurges:     failed,
	}, nil
}

// purge destroys CDN objects concurrently and returns how many failed
func (s *TeamService) purge(ctx context.Context, publicIDs []string) int {
	var failed atomic.Int32
	var g errgroup.Group
	g.SetLimit(purgeConcurrency)

	for _, publicID := range publicIDs {
		if publicID == "" {
			continue
		}
		g.Go(func() error {
			if err := s.store.Destroy(ctx, publicID); err != nil {
				failed.Add(1)
				logger.WithContext(ctx).WithError(err).WithField("public_id", publicID).Warn("Failed to purge CDN object")
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(failed.Load())
}

func (s *TeamService) uploadLogo(ctx context.Context, ownerID uuid.UUID, logo *cdn.File) (*cdn.UploadResult, error) {
	if logo == nil || len(logo.Data) == 0 {
		return nil, nil
	}
	name := fmt.Sprintf("team_%s_%s", ownerID, uuid.New())
	result, err := s.store.Upload(ctx, cdn.FolderTeams, name, logo.ContentType, logo.Data)
	if err != nil {
		return nil, apperrors.NewDependencyError("cdn", err)
	}
	return result, nil
}

func (s *TeamService) destroyBestEffort(ctx context.Context, publicID string) {
	if err := s.store.Destroy(context.WithoutCancel(ctx), publicID); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("public_id", publicID).Warn("Failed to destroy CDN object")
	}
}

func (s *TeamService) getOwned(ctx context.Context, teamID, ownerID uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team.UserID != ownerID {
		return nil, apperrors.ErrTeamForbidden
	}
	return team, nil
}

// convertToResponse converts a team model to response
func (s *TeamService) convertToResponse(team *models.Team) *TeamResponse {
	athleteIDs := make([]uuid.UUID, len(team.AthleteIDs))
	copy(athleteIDs, team.AthleteIDs)

	return &TeamResponse{
		ID:           team.ID,
		UserID:       team.UserID,
		Name:         team.Name,
		AgeCategory:  team.AgeCategory,
		AthleteIDs:   athleteIDs,
		Logo:         team.Logo,
		GalleryCount: team.GalleryCount,
		Version:      team.Version,
		CreatedAt:    team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    team.UpdatedAt.Format(time.RFC3339),
	}
}
