package service

import (
	"context"
	"fmt"
	"time"

	"coaching-roster-backend/internal/cdn"
	"coaching-roster-backend/internal/database/models"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/logger"
	"coaching-roster-backend/internal/repository"

	"github.com/google/uuid"
)

// Gallery defaults
const (
	DefaultGalleryPageSize       = 30
	DefaultMaxPhotoBytes   int64 = 5 * 1024 * 1024
)

// GalleryService manages team photo galleries
type GalleryService struct {
	teamRepo      repository.TeamRepositoryInterface
	tx            repository.TransactorInterface
	quota         *QuotaService
	store         cdn.ObjectStore
	maxPhotoBytes int64
	pageSize      int
	now           func() time.Time
}

// GalleryOptions tunes gallery limits
type GalleryOptions struct {
	MaxPhotoBytes int64
	PageSize      int
	Now           func() time.Time
}

// NewGalleryService creates a new gallery service
func NewGalleryService(teamRepo repository.TeamRepositoryInterface, tx repository.TransactorInterface, quota *QuotaService, store cdn.ObjectStore, opts GalleryOptions) *GalleryService {
	if opts.MaxPhotoBytes <= 0 {
		opts.MaxPhotoBytes = DefaultMaxPhotoBytes
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultGalleryPageSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &GalleryService{
		teamRepo:      teamRepo,
		tx:            tx,
		quota:         quota,
		store:         store,
		maxPhotoBytes: opts.MaxPhotoBytes,
		pageSize:      opts.PageSize,
		now:           opts.Now,
	}
}

// UploadPhotoResponse is returned after a successful upload
type UploadPhotoResponse struct {
	Photo        models.Photo  `json:"photo"`
	GalleryCount int           `json:"galleryCount"`
	Storage      *StorageQuota `json:"storage,omitempty"`
}

// DeletePhotoResponse is returned after a photo is removed
type DeletePhotoResponse struct {
	PhotoID      uuid.UUID     `json:"photoId"`
	GalleryCount int           `json:"galleryCount"`
	Storage      *StorageQuota `json:"storage,omitempty"`
}

// GalleryPage is one page of a team gallery in stored order
type GalleryPage struct {
	Photos   []models.Photo `json:"photos"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Total    int            `json:"total"`
	HasMore  bool           `json:"hasMore"`
}

// Upload stores a photo on the CDN and prepends it to the team gallery
func (s *GalleryService) Upload(ctx context.Context, teamID, ownerID uuid.UUID, file *cdn.File) (*UploadPhotoResponse, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, apperrors.NewValidationError("photo", "no file uploaded")
	}

	if _, err := s.getOwned(ctx, teamID, ownerID); err != nil {
		return nil, err
	}

	size := file.Size()
	if size > s.maxPhotoBytes {
		return nil, &apperrors.PayloadTooLargeError{LimitBytes: s.maxPhotoBytes, ActualBytes: size}
	}

	if err := s.quota.CheckUpload(ctx, ownerID, size); err != nil {
		return nil, err
	}

	photoID := uuid.New()
	folder := cdn.Key(cdn.FolderGallery, teamID.String())
	uploaded, err := s.store.Upload(ctx, folder, "photo_"+photoID.String(), file.ContentType, file.Data)
	if err != nil {
		return nil, apperrors.NewDependencyError("cdn", err)
	}

	photo := models.Photo{
		ID:         photoID,
		URL:        uploaded.URL,
		PublicID:   uploaded.PublicID,
		Size:       uploaded.Bytes,
		UploadedAt: s.now().UTC(),
	}
	if photo.Size <= 0 {
		photo.Size = size
	}

	var galleryCount int
	err = s.tx.WithinTransaction(ctx, func(repos repository.Repositories) error {
		team, err := lockOwnedTeam(ctx, repos, teamID, ownerID)
		if err != nil {
			return err
		}
		team.PrependPhoto(photo)
		team.Version++
		if err := repos.Teams.Update(ctx, team); err != nil {
			return fmt.Errorf("failed to update gallery: %w", err)
		}
		galleryCount = team.GalleryCount
		return nil
	})
	if err != nil {
		if derr := s.store.Destroy(context.WithoutCancel(ctx), photo.PublicID); derr != nil {
			logger.WithContext(ctx).WithError(derr).WithField("public_id", photo.PublicID).Warn("Failed to destroy orphaned photo")
		}
		return nil, err
	}

	storage := s.storageAfterWrite(ctx, ownerID)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":  teamID,
		"photo_id": photo.ID,
		"size":     photo.Size,
	}).Info("Photo uploaded")

	return &UploadPhotoResponse{Photo: photo, GalleryCount: galleryCount, Storage: storage}, nil
}

// Delete removes a photo from the gallery. A CDN failure is logged and ignored.
func (s *GalleryService) Delete(ctx context.Context, teamID, photoID, ownerID uuid.UUID) (*DeletePhotoResponse, error) {
	team, err := s.getOwned(ctx, teamID, ownerID)
	if err != nil {
		return nil, err
	}
	photo := team.FindPhoto(photoID)
	if photo == nil {
		return nil, apperrors.ErrPhotoNotFound
	}

	if err := s.store.Destroy(ctx, photo.PublicID); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("public_id", photo.PublicID).Warn("Failed to delete photo from CDN")
	}

	var galleryCount int
	err = s.tx.WithinTransaction(ctx, func(repos repository.Repositories) error {
		locked, err := lockOwnedTeam(ctx, repos, teamID, ownerID)
		if err != nil {
			return err
		}
		if locked.RemovePhoto(photoID) == nil {
			return apperrors.ErrPhotoNotFound
		}
		locked.Version++
		if err := repos.Teams.Update(ctx, locked); err != nil {
			return fmt.Errorf("failed to update gallery: %w", err)
		}
		galleryCount = locked.GalleryCount
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeletePhotoResponse{PhotoID: photoID, GalleryCount: galleryCount, Storage: s.storageAfterWrite(ctx, ownerID)}, nil
}

// storageAfterWrite reports usage once the gallery write has committed.
// A failed read is logged and yields nil.
func (s *GalleryService) storageAfterWrite(ctx context.Context, ownerID uuid.UUID) *StorageQuota {
	storage, err := s.quota.Snapshot(ctx, ownerID)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to read storage usage after gallery change")
		return nil
	}
	return storage
}

// List returns one page of the gallery, newest first
func (s *GalleryService) List(ctx context.Context, teamID, ownerID uuid.UUID, page int) (*GalleryPage, error) {
	team, err := s.getOwned(ctx, teamID, ownerID)
	if err != nil {
		return nil, err
	}

	page = normalizePage(page)
	total := len(team.Gallery)
	start := pageOffset(page, s.pageSize)
	if start < 0 || start > total {
		start = total
	}
	end := start + s.pageSize
	if end > total {
		end = total
	}

	photos := make([]models.Photo, end-start)
	copy(photos, team.Gallery[start:end])

	return &GalleryPage{
		Photos:   photos,
		Page:     page,
		PageSize: s.pageSize,
		Total:    total,
		HasMore:  end < total,
	}, nil
}

func (s *GalleryService) getOwned(ctx context.Context, teamID, ownerID uuid.UUID) (*models.Team, error) {
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
