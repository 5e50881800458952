package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coaching-roster-backend/internal/cdn"
	"coaching-roster-backend/internal/database/models"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/logger"
	"coaching-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService handles profile changes of the signed-in user
type UserService struct {
	repo      repository.UserRepositoryInterface
	store     cdn.ObjectStore
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, store cdn.ObjectStore, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		store:     store,
		validator: validator,
	}
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Username     *string `json:"username,omitempty" validate:"omitempty,min=3,max=25"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=50"`
	DateOfBirth  *Date   `json:"dateOfBirth,omitempty"`
	DeleteAvatar bool    `json:"deleteAvatar,omitempty"`
}

// UserResponse represents the public view of a user
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Location    string    `json:"location,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   string    `json:"createdAt"`
}

// UpdateProfile applies profile fields, replaces or removes the avatar
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest, avatar *cdn.File) (*UserResponse, error) {
	// Validate request
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	hasAvatar := avatar != nil && len(avatar.Data) > 0
	if req.Username == nil && req.Location == nil && req.DateOfBirth == nil && !req.DeleteAvatar && !hasAvatar {
		return nil, apperrors.ErrNothingToUpdate
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	oldAvatar := user.AvatarPublicID

	if req.DeleteAvatar {
		user.Avatar = ""
		user.AvatarPublicID = ""
		if err := s.repo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		s.destroyBestEffort(ctx, oldAvatar)
		return convertUser(user), nil
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Location != nil {
		user.Location = strings.TrimSpace(*req.Location)
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth.ptr()
	}

	var uploadedID string
	if hasAvatar {
		name := fmt.Sprintf("user_%s_%s", user.ID, uuid.New())
		uploaded, err := s.store.Upload(ctx, cdn.FolderAvatars, name, avatar.ContentType, avatar.Data)
		if err != nil {
			return nil, apperrors.NewDependencyError("cdn", err)
		}
		user.Avatar = uploaded.URL
		user.AvatarPublicID = uploaded.PublicID
		uploadedID = uploaded.PublicID
	}

	if err := s.repo.Update(ctx, user); err != nil {
		s.destroyBestEffort(ctx, uploadedID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if hasAvatar {
		s.destroyBestEffort(ctx, oldAvatar)
	}

	return convertUser(user), nil
}

func (s *UserService) destroyBestEffort(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.store.Destroy(context.WithoutCancel(ctx), publicID); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("public_id", publicID).Warn("Failed to destroy avatar")
	}
}

func convertUser(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Location:  user.Location,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.DateOfBirth != nil {
		resp.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}
	return resp
}
