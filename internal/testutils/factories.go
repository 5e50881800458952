package testutils

import (
	"time"

	"coaching-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique per call to satisfy the email index
		Email:        "coach-" + id.String()[:8] + "@example.com",
		PasswordHash: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z5Y2pQ7u9p6b1p2Qy6XzW7yG",
		Username:     "coach",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// AthleteFactory provides methods to create test Athlete data
type AthleteFactory struct{}

// NewAthleteFactory creates a new AthleteFactory
func NewAthleteFactory() *AthleteFactory {
	return &AthleteFactory{}
}

// Create creates an unassigned test Athlete owned by userID
func (f *AthleteFactory) Create(userID uuid.UUID) *models.Athlete {
	return &models.Athlete{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:             userID,
		FirstName:          "Taras",
		LastName:           "Melnyk",
		BirthDate:          time.Date(2012, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:             models.GenderMale,
		CurrentInstitution: "Sports school 1",
		Coach:              "O. Hnatyuk",
		DateOfAdmission:    time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithName sets first and last name
func (f *AthleteFactory) WithName(userID uuid.UUID, first, last string) *models.Athlete {
	athlete := f.Create(userID)
	athlete.FirstName = first
	athlete.LastName = last
	return athlete
}

// WithTeam creates an athlete already assigned to teamID
func (f *AthleteFactory) WithTeam(userID, teamID uuid.UUID) *models.Athlete {
	athlete := f.Create(userID)
	athlete.TeamID = &teamID
	return athlete
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates an empty test Team owned by userID
func (f *TeamFactory) Create(userID uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      userID,
		Name:        "U14 Boys",
		AgeCategory: "U14",
		AthleteIDs:  datatypes.JSONSlice[uuid.UUID]{},
		Gallery:     datatypes.JSONSlice[models.Photo]{},
		Version:     1,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(userID uuid.UUID, name string) *models.Team {
	team := f.Create(userID)
	team.Name = name
	return team
}

// WithPhotos creates a team whose gallery holds one photo per size, newest first
func (f *TeamFactory) WithPhotos(userID uuid.UUID, sizes ...int64) *models.Team {
	team := f.Create(userID)
	for i := len(sizes) - 1; i >= 0; i-- {
		id := uuid.New()
		team.PrependPhoto(models.Photo{
			ID:         id,
			URL:        "https://cdn.example.com/gallery/" + id.String(),
			PublicID:   "gallery/" + id.String(),
			Size:       sizes[i],
			UploadedAt: time.Now(),
		})
	}
	return team
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Athlete *AthleteFactory
	Team    *TeamFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Athlete: NewAthleteFactory(),
		Team:    NewTeamFactory(),
	}
}
