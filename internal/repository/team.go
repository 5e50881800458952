package repository

import (
	"context"

	"coaching-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDForUpdate retrieves a team and locks its row until the surrounding
// transaction ends
func (r *TeamRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByUser retrieves a user's teams with pagination, newest first.
// The gallery column is not loaded.
func (r *TeamRepository) ListByUser(ctx context.Context, userID uuid.UUID, name string, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Team{}).Where("user_id = ?", userID)
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Omit("gallery").Order("created_at DESC").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update updates a team
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Team{}, "id = ?", id).Error
}

// GalleriesByUser retrieves only the id and gallery of every team owned by userID
func (r *TeamRepository) GalleriesByUser(ctx context.Context, userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).Select("id", "gallery").Where("user_id = ?", userID).Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}
