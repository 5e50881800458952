package repository

import (
	"context"

	"coaching-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	SetToken(ctx context.Context, id uuid.UUID, token string) error
}

// AthleteFilter narrows athlete listings
type AthleteFilter struct {
	UnassignedOnly bool
	Search         string
}

// AthleteRepositoryInterface defines the interface for athlete repository operations
type AthleteRepositoryInterface interface {
	Create(ctx context.Context, athlete *models.Athlete) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Athlete, error)
	GetWithRelations(ctx context.Context, id uuid.UUID) (*models.Athlete, error)
	// GetByIDsForUpdate loads and row-locks the athletes that exist among ids.
	// Missing ids are simply absent from the result.
	GetByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]models.Athlete, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Athlete, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter AthleteFilter, limit, offset int) ([]models.Athlete, int64, error)
	Update(ctx context.Context, athlete *models.Athlete) error
	SetTeam(ctx context.Context, ids []uuid.UUID, teamID *uuid.UUID) error
	// UnlinkFromTeam clears team_id for the given athletes whose team_id still
	// equals teamID and returns the number of rows changed.
	UnlinkFromTeam(ctx context.Context, ids []uuid.UUID, teamID uuid.UUID) (int64, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListByUser(ctx context.Context, userID uuid.UUID, name string, limit, offset int) ([]models.Team, int64, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	GalleriesByUser(ctx context.Context, userID uuid.UUID) ([]models.Team, error)
}

// Repositories groups repositories bound to the same connection or transaction
type Repositories struct {
	Users    UserRepositoryInterface
	Athletes AthleteRepositoryInterface
	Teams    TeamRepositoryInterface
}

// TransactorInterface runs a function against repositories bound to a single
// database transaction. The transaction commits when fn returns nil.
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
}
