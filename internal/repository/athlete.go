package repository

import (
	"context"

	"coaching-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AthleteRepository handles database operations for athletes
type AthleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository creates a new athlete repository
func NewAthleteRepository(db *gorm.DB) *AthleteRepository {
	return &AthleteRepository{db: db}
}

// Create creates a new athlete together with its previous coaches,
// medical examinations and relatives
func (r *AthleteRepository) Create(ctx context.Context, athlete *models.Athlete) error {
	return r.db.WithContext(ctx).Create(athlete).Error
}

// GetByID retrieves an athlete by ID
func (r *AthleteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Athlete, error) {
	var athlete models.Athlete
	err := r.db.WithContext(ctx).First(&athlete, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &athlete, nil
}

// GetWithRelations retrieves an athlete with all sibling collections
func (r *AthleteRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*models.Athlete, error) {
	var athlete models.Athlete
	err := r.db.WithContext(ctx).
		Preload("PreviousCoaches").
		Preload("MedicalExaminations", func(db *gorm.DB) *gorm.DB {
			return db.Order("examination_date DESC")
		}).
		Preload("Relatives").
		First(&athlete, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &athlete, nil
}

// GetByIDsForUpdate loads the athletes among ids and locks their rows until
// the surrounding transaction ends. Rows are locked in id order.
func (r *AthleteRepository) GetByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]models.Athlete, error) {
	var athletes []models.Athlete
	if len(ids) == 0 {
		return athletes, nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id").
		Find(&athletes).Error
	if err != nil {
		return nil, err
	}
	return athletes, nil
}

// GetByIDs retrieves the athletes among ids without locking
func (r *AthleteRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Athlete, error) {
	var athletes []models.Athlete
	if len(ids) == 0 {
		return athletes, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&athletes).Error
	if err != nil {
		return nil, err
	}
	return athletes, nil
}

// ListByUser retrieves a user's athletes with pagination, newest first
func (r *AthleteRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter AthleteFilter, limit, offset int) ([]models.Athlete, int64, error) {
	var athletes []models.Athlete
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Athlete{}).Where("user_id = ?", userID)
	if filter.UnassignedOnly {
		query = query.Where("team_id IS NULL")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(first_name ILIKE ? OR last_name ILIKE ?)", pattern, pattern)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&athletes).Error
	if err != nil {
		return nil, 0, err
	}

	return athletes, total, nil
}

// Update updates an athlete's own columns
func (r *AthleteRepository) Update(ctx context.Context, athlete *models.Athlete) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(athlete).Error
}

// SetTeam points every athlete in ids at teamID; nil unassigns them
func (r *AthleteRepository) SetTeam(ctx context.Context, ids []uuid.UUID, teamID *uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var value interface{} = gorm.Expr("NULL")
	if teamID != nil {
		value = *teamID
	}
	return r.db.WithContext(ctx).Model(&models.Athlete{}).Where("id IN ?", ids).Update("team_id", value).Error
}

// UnlinkFromTeam unassigns athletes that are still on teamID
func (r *AthleteRepository) UnlinkFromTeam(ctx context.Context, ids []uuid.UUID, teamID uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Model(&models.Athlete{}).
		Where("id IN ? AND team_id = ?", ids, teamID).
		Update("team_id", gorm.Expr("NULL"))
	return result.RowsAffected, result.Error
}
