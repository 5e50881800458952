package service_test

import (
	"context"

	"coaching-roster-backend/internal/database/models"
	"coaching-roster-backend/internal/mocks"
	"coaching-roster-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

// expectTx makes the mock transactor run fn against repos
func expectTx(tx *mocks.MockTransactorInterface, repos repository.Repositories) *gomock.Call {
	return tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Repositories) error) error {
			return fn(repos)
		})
}

func newTeam(ownerID uuid.UUID, athleteIDs ...uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		UserID:      ownerID,
		Name:        "U14 Boys",
		AgeCategory: "U14",
		AthleteIDs:  datatypes.JSONSlice[uuid.UUID](append([]uuid.UUID{}, athleteIDs...)),
		Gallery:     datatypes.JSONSlice[models.Photo]{},
		Version:     1,
	}
}

func newAthlete(ownerID uuid.UUID, teamID *uuid.UUID) models.Athlete {
	return models.Athlete{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    ownerID,
		TeamID:    teamID,
		FirstName: "Ivan",
		LastName:  "Petrenko",
	}
}

func teamRef(id uuid.UUID) *uuid.UUID {
	return &id
}

func photoOf(size int64) models.Photo {
	id := uuid.New()
	return models.Photo{
		ID:       id,
		URL:      "https://cdn.example.com/gallery/" + id.String(),
		PublicID: "gallery/" + id.String(),
		Size:     size,
	}
}
