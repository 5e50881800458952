package service

import (
	"context"
	"fmt"
	"math"

	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/repository"

	"github.com/google/uuid"
)

// DefaultStorageLimitBytes is the per-user gallery storage limit (500 MiB)
const DefaultStorageLimitBytes int64 = 500 * 1024 * 1024

// QuotaService computes per-user storage consumption from team galleries.
// Usage is recomputed from the database on every call.
type QuotaService struct {
	teamRepo   repository.TeamRepositoryInterface
	limitBytes int64
}

// NewQuotaService creates a new quota service
func NewQuotaService(teamRepo repository.TeamRepositoryInterface, limitBytes int64) *QuotaService {
	if limitBytes <= 0 {
		limitBytes = DefaultStorageLimitBytes
	}
	return &QuotaService{
		teamRepo:   teamRepo,
		limitBytes: limitBytes,
	}
}

// StorageQuota is a point-in-time view of a user's storage consumption
type StorageQuota struct {
	UsedBytes      int64   `json:"usedBytes"`
	LimitBytes     int64   `json:"limitBytes"`
	RemainingBytes int64   `json:"remainingBytes"`
	UsedPercent    int     `json:"usedPercent"`
	UsedMB         float64 `json:"usedMB"`
	LimitMB        float64 `json:"limitMB"`
	RemainingMB    float64 `json:"remainingMB"`
}

// LimitBytes returns the configured per-user limit
func (s *QuotaService) LimitBytes() int64 {
	return s.limitBytes
}

// Usage sums the recorded size of every photo in every team owned by userID
func (s *QuotaService) Usage(ctx context.Context, userID uuid.UUID) (int64, error) {
	teams, err := s.teamRepo.GalleriesByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to load galleries: %w", err)
	}

	var used int64
	for i := range teams {
		used += teams[i].GalleryBytes()
	}
	return used, nil
}

// Snapshot returns usage together with the limit and derived values
func (s *QuotaService) Snapshot(ctx context.Context, userID uuid.UUID) (*StorageQuota, error) {
	used, err := s.Usage(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.snapshotFor(used), nil
}

// Percentage returns round(100 * used / limit)
func (s *QuotaService) Percentage(used int64) int {
	return int(math.Round(100 * float64(used) / float64(s.limitBytes)))
}

// CheckUpload returns a QuotaExceededError when adding size bytes would pass the limit.
// The check is advisory: two concurrent uploads may both pass it.
func (s *QuotaService) CheckUpload(ctx context.Context, userID uuid.UUID, size int64) error {
	used, err := s.Usage(ctx, userID)
	if err != nil {
		return err
	}
	if used+size > s.limitBytes {
		return &apperrors.QuotaExceededError{
			RemainingBytes: s.limitBytes - used,
			NeededBytes:    size,
		}
	}
	return nil
}

func (s *QuotaService) snapshotFor(used int64) *StorageQuota {
	remaining := s.limitBytes - used
	return &StorageQuota{
		UsedBytes:      used,
		LimitBytes:     s.limitBytes,
		RemainingBytes: remaining,
		UsedPercent:    s.Percentage(used),
		UsedMB:         roundMB(used),
		LimitMB:        roundMB(s.limitBytes),
		RemainingMB:    roundMB(remaining),
	}
}

func roundMB(b int64) float64 {
	return math.Round(apperrors.BytesToMB(b)*100) / 100
}
