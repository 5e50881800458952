package service

import (
	"bytes"
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

// DefaultAthletePageSize is the number of athletes per list page
const DefaultAthletePageSize = 20

// Date accepts both "2006-01-02" and RFC 3339 timestamps in JSON
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	raw := string(bytes.Trim(b, `"`))
	if raw == "" || raw == "null" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", raw)
}

func (d *Date) ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// AthleteService handles business logic for athletes
type AthleteService struct {
	repo      repository.AthleteRepositoryInterface
	store     cdn.ObjectStore
	validator *validator.Validate
	pageSize  int
}

// NewAthleteService creates a new athlete service
func NewAthleteService(repo repository.AthleteRepositoryInterface, store cdn.ObjectStore, validator *validator.Validate) *AthleteService {
	return &AthleteService{
		repo:      repo,
		store:     store,
		validator: validator,
		pageSize:  DefaultAthletePageSize,
	}
}

// PreviousCoachInput describes a former coach of a new athlete
type PreviousCoachInput struct {
	PreviousCoach       string `json:"previousCoach" validate:"required,min=1,max=200"`
	PreviousInstitution string `json:"previousInstitution" validate:"max=200"`
	CoachContacts       string `json:"coachContacts" validate:"max=200"`
	EntryDate           *Date  `json:"entryDate"`
	ExitDate            *Date  `json:"exitDate"`
}

// MedicalExaminationInput describes a health check of a new athlete
type MedicalExaminationInput struct {
	DoctorName         string `json:"doctorName" validate:"required,min=1,max=200"`
	HealthStatus       string `json:"healthStatus" validate:"required,min=1,max=200"`
	MedicalInstitution string `json:"medicalInstitution" validate:"max=200"`
	ExaminationDate    *Date  `json:"examinationDate" validate:"required"`
}

// RelativeInput describes a contact person of a new athlete
type RelativeInput struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Contacts     string `json:"contacts" validate:"required,min=1,max=200"`
	Relationship string `json:"relationship" validate:"max=100"`
}

// CreateAthleteRequest represents the request to create an athlete.
// Team membership is managed by team operations only.
type CreateAthleteRequest struct {
	FirstName           string                    `json:"firstName" validate:"required,min=1,max=100"`
	LastName            string                    `json:"lastName" validate:"required,min=1,max=100"`
	MiddleName          string                    `json:"middleName" validate:"max=100"`
	BirthDate           *Date                     `json:"birthDate" validate:"required"`
	Address             string                    `json:"address" validate:"max=300"`
	Gender              string                    `json:"gender" validate:"omitempty,oneof=male female"`
	Phone               string                    `json:"phone" validate:"max=30"`
	Email               string                    `json:"email" validate:"omitempty,email,max=255"`
	SocialMedia         string                    `json:"socialMedia" validate:"max=300"`
	Role                string                    `json:"role" validate:"max=100"`
	SportsRank          string                    `json:"sportsRank" validate:"max=100"`
	Notes               string                    `json:"notes"`
	School              string                    `json:"school" validate:"max=200"`
	University          string                    `json:"university" validate:"max=200"`
	CurrentInstitution  string                    `json:"currentInstitution" validate:"required,min=1,max=200"`
	Coach               string                    `json:"coach" validate:"required,min=1,max=200"`
	CoachContact        string                    `json:"coachContact" validate:"max=200"`
	DateOfAdmission     *Date                     `json:"dateOfAdmission" validate:"required"`
	PreviousCoaches     []PreviousCoachInput      `json:"previousCoaches" validate:"dive"`
	MedicalExaminations []MedicalExaminationInput `json:"medicalExaminations" validate:"dive"`
	Relatives           []RelativeInput           `json:"relatives" validate:"dive"`
}

// AthleteListResponse represents a paginated list of athletes
type AthleteListResponse struct {
	Athletes []models.Athlete `json:"athletes"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// Create creates an athlete with its sibling collections and optional photo
func (s *AthleteService) Create(ctx context.Context, ownerID uuid.UUID, req *CreateAthleteRequest, photo *cdn.File) (*models.Athlete, error) {
	// Validate request
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	athlete := &models.Athlete{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		UserID:             ownerID,
		FirstName:          strings.TrimSpace(req.FirstName),
		LastName:           strings.TrimSpace(req.LastName),
		MiddleName:         strings.TrimSpace(req.MiddleName),
		BirthDate:          req.BirthDate.Time,
		Address:            req.Address,
		Gender:             models.Gender(req.Gender),
		Phone:              req.Phone,
		Email:              strings.ToLower(req.Email),
		SocialMedia:        req.SocialMedia,
		Role:               req.Role,
		SportsRank:         req.SportsRank,
		Notes:              req.Notes,
		School:             req.School,
		University:         req.University,
		CurrentInstitution: req.CurrentInstitution,
		Coach:              req.Coach,
		CoachContact:       req.CoachContact,
		DateOfAdmission:    req.DateOfAdmission.Time,
	}

	for _, c := range req.PreviousCoaches {
		athlete.PreviousCoaches = append(athlete.PreviousCoaches, models.PreviousCoach{
			UserID:              ownerID,
			PreviousCoach:       c.PreviousCoach,
			PreviousInstitution: c.PreviousInstitution,
			CoachContacts:       c.CoachContacts,
			EntryDate:           c.EntryDate.ptr(),
			ExitDate:            c.ExitDate.ptr(),
		})
	}
	for _, m := range req.MedicalExaminations {
		athlete.MedicalExaminations = append(athlete.MedicalExaminations, models.MedicalExamination{
			UserID:             ownerID,
			DoctorName:         m.DoctorName,
			HealthStatus:       m.HealthStatus,
			MedicalInstitution: m.MedicalInstitution,
			ExaminationDate:    m.ExaminationDate.Time,
		})
	}
	for _, r := range req.Relatives {
		athlete.Relatives = append(athlete.Relatives, models.Relative{
			UserID:       ownerID,
			Name:         r.Name,
			Contacts:     r.Contacts,
			Relationship: r.Relationship,
		})
	}

	if photo != nil && len(photo.Data) > 0 {
		name := fmt.Sprintf("athlete_%s_%s", ownerID, uuid.New())
		uploaded, err := s.store.Upload(ctx, cdn.FolderAthletes, name, photo.ContentType, photo.Data)
		if err != nil {
			return nil, apperrors.NewDependencyError("cdn", err)
		}
		athlete.Photo = uploaded.URL
		athlete.PhotoPublicID = uploaded.PublicID
	}

	if err := s.repo.Create(ctx, athlete); err != nil {
		if athlete.PhotoPublicID != "" {
			if derr := s.store.Destroy(context.WithoutCancel(ctx), athlete.PhotoPublicID); derr != nil {
				logger.WithContext(ctx).WithError(derr).Warn("Failed to destroy athlete photo")
			}
		}
		return nil, fmt.Errorf("failed to create athlete: %w", err)
	}

	logger.WithContext(ctx).WithField("athlete_id", athlete.ID).Info("Athlete created")
	return athlete, nil
}

// Get returns an athlete with its sibling collections
func (s *AthleteService) Get(ctx context.Context, athleteID, ownerID uuid.UUID) (*models.Athlete, error) {
	athlete, err := s.repo.GetWithRelations(ctx, athleteID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrAthleteNotFound
		}
		return nil, fmt.Errorf("failed to get athlete: %w", err)
	}
	if athlete.UserID != ownerID {
		return nil, apperrors.ErrAthleteForbidden
	}
	return athlete, nil
}

// List returns one page of the caller's athletes
func (s *AthleteService) List(ctx context.Context, ownerID uuid.UUID, filter repository.AthleteFilter, page int) (*AthleteListResponse, error) {
	page = normalizePage(page)
	athletes, total, err := s.repo.ListByUser(ctx, ownerID, filter, s.pageSize, pageOffset(page, s.pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list athletes: %w", err)
	}
	if athletes == nil {
		athletes = []models.Athlete{}
	}
	return &AthleteListResponse{
		Athletes: athletes,
		Total:    total,
		Page:     page,
		PageSize: s.pageSize,
	}, nil
}
