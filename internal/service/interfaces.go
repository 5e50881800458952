package service

import (
	"context"

	"coaching-roster-backend/internal/cdn"
	"coaching-roster-backend/internal/database/models"
	"coaching-roster-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *CreateTeamRequest, logo *cdn.File) (*TeamResponse, error)
	Update(ctx context.Context, teamID, ownerID uuid.UUID, req *UpdateTeamRequest, logo *cdn.File) (*TeamResponse, error)
	Get(ctx context.Context, teamID, ownerID uuid.UUID) (*TeamDetailResponse, error)
	List(ctx context.Context, ownerID uuid.UUID, name string, page int) (*TeamListResponse, error)
	Delete(ctx context.Context, teamID, ownerID uuid.UUID) (*DeleteTeamResponse, error)
}

// MembershipServiceInterface defines roster add/remove operations
type MembershipServiceInterface interface {
	AddAthletes(ctx context.Context, teamID, ownerID uuid.UUID, ids []uuid.UUID) (*RosterChangeResponse, error)
	RemoveAthletes(ctx context.Context, teamID, ownerID uuid.UUID, ids []uuid.UUID) (*RosterChangeResponse, error)
}

// GalleryServiceInterface defines the interface for gallery service
type GalleryServiceInterface interface {
	Upload(ctx context.Context, teamID, ownerID uuid.UUID, file *cdn.File) (*UploadPhotoResponse, error)
	Delete(ctx context.Context, teamID, photoID, ownerID uuid.UUID) (*DeletePhotoResponse, error)
	List(ctx context.Context, teamID, ownerID uuid.UUID, page int) (*GalleryPage, error)
}

// QuotaServiceInterface defines the interface for storage accounting
type QuotaServiceInterface interface {
	Usage(ctx context.Context, userID uuid.UUID) (int64, error)
	Snapshot(ctx context.Context, userID uuid.UUID) (*StorageQuota, error)
	Percentage(used int64) int
}

// AthleteServiceInterface defines the interface for athlete service
type AthleteServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *CreateAthleteRequest, photo *cdn.File) (*models.Athlete, error)
	Get(ctx context.Context, athleteID, ownerID uuid.UUID) (*models.Athlete, error)
	List(ctx context.Context, ownerID uuid.UUID, filter repository.AthleteFilter, page int) (*AthleteListResponse, error)
}

// UserServiceInterface defines the interface for profile operations
type UserServiceInterface interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest, avatar *cdn.File) (*UserResponse, error)
}
