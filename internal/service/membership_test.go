package service_test

import (
	"context"
	"errors"
	"testing"

	"coaching-roster-backend/internal/database/models"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/mocks"
	"coaching-roster-backend/internal/repository"
	"coaching-roster-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MembershipServiceTestSuite defines the test suite for MembershipService
type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	tx       *mocks.MockTransactorInterface
	teams    *mocks.MockTeamRepositoryInterface
	athletes *mocks.MockAthleteRepositoryInterface
	repos    repository.Repositories
	service  *service.MembershipService
	ctx      context.Context
	ownerID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.tx = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.teams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.athletes = mocks.NewMockAthleteRepositoryInterface(suite.ctrl)
	suite.repos = repository.Repositories{Teams: suite.teams, Athletes: suite.athletes}
	suite.service = service.NewMembershipService(suite.tx)
	suite.ctx = context.Background()
	suite.ownerID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) TestAddAthletesAssignsBothSides() {
	existing := newAthlete(suite.ownerID, nil)
	team := newTeam(suite.ownerID, existing.ID)
	existing.TeamID = teamRef(team.ID)
	a1 := newAthlete(suite.ownerID, nil)
	a2 := newAthlete(suite.ownerID, nil)

	expectTx(suite.tx, suite.repos)
	suite.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)
	suite.athletes.EXPECT().GetByIDsForUpdate(gomock.Any(), []uuid.UUID{a1.ID, a2.ID}).Return([]models.Athlete{a2, a1}, nil)
	suite.athletes.EXPECT().SetTeam(gomock.Any(), []uuid.UUID{a1.ID, a2.ID}, teamRef(team.ID)).Return(nil)
	suite.teams.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved *models.Team) error {
		suite.Equal([]uuid.UUID{existing.ID, a1.ID, a2.ID}, []uuid.UUID(saved.AthleteIDs))
		suite.Equal(int64(2), saved.Version)
		return nil
	})

	resp, err := suite.service.AddAthletes(suite.ctx, team.ID, suite.ownerID, []uuid.UUID{a1.ID, a2.ID, a1.ID})

	suite.Require().NoError(err)
	suite.Equal(team.ID, resp.TeamID)
	suite.Equal(2, resp.Changed)
	suite.Equal(3, resp.RosterSize)
}

func (suite *MembershipServiceTestSuite) TestAddAthletesAlreadyMemberIsNoop() {
	member := newAthlete(suite.ownerID, nil)
	team := newTeam(suite.ownerID, member.ID)
	member.TeamID = teamRef(team.ID)

	expectTx(suite.tx, suite.repos)
	suite.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)
	suite.athletes.EXPECT().GetByIDsForUpdate(gomock.Any(), []uuid.UUID{member.ID}).Return([]models.Athlete{member}, nil)

	resp, err := suite.service.AddAthletes(suite.ctx, team.ID, suite.ownerID, []uuid.UUID{member.ID})

	suite.Require().NoError(err)
	suite.Equal(0, resp.Changed)
	suite.Equal(1, resp.RosterSize)
}

func (suite *MembershipServiceTestSuite) TestAddAthletesAssignedElsewhereConflicts() {
	team := newTeam(suite.ownerID)
	otherTeam := uuid.New()
	athlete := newAthlete(suite.ownerID, teamRef(otherTeam))

	expectTx(suite.tx, suite.repos)
	suite.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)
	suite.athletes.EXPECT().GetByIDsForUpdate(gomock.Any(), []uuid.UUID{athlete.ID}).Return([]models.Athlete{athlete}, nil)

	_, err := suite.service.AddAthletes(suite.ctx, team.ID, suite.ownerID, []uuid.UUID{athlete.ID})

	membershipErr, ok := apperrors.AsMembership(err)
	suite.Require().True(ok)
	suite.True(membershipErr.Has(athlete.ID, apperrors.ReasonConflict))
	suite.NotContains(err.Error(), otherTeam.String())
}

func (suite *MembershipServiceTestSuite) TestAddAthletesReportsEveryViolation() {
	team := newTeam(suite.ownerID)
	missing := uuid.New()
	foreign := newAthlete(uuid.New(), nil)
	taken := newAthlete(suite.ownerID, teamRef(uuid.New()))
	valid := newAthlete(suite.ownerID, nil)

	expectTx(suite.tx, suite.repos)
	suite.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)
	suite.athletes.EXPECT().GetByIDsForUpdate(gomock.Any(), gomock.Any()).Return([]models.Athlete{foreign, taken, valid}, nil)
	// no SetTeam or Update: a single invalid id blocks every write

	_, err := suite.service.AddAthletes(suite.ctx, team.ID, suite.ownerID, []uuid.UUID{missing, foreign.ID, taken.ID, valid.ID})

	membershipErr, ok := apperrors.AsMembership(err)
	suite.Require().True(ok)
	suite.Len(membershipErr.Violations, 3)
	suite.True(membershipErr.Has(missing, apperrors.ReasonNotFound))
	suite.True(membershipErr.Has(foreign.ID, apperrors.ReasonForbidden))
	suite.True(membershipErr.Has(taken.ID, apperrors.ReasonConflict))
}

func (suite *MembershipServiceTestSuite) TestAddAthletesRequiresIDs() {
	_, err := suite.service.AddAthletes(suite.ctx, uuid.New(), suite.ownerID, []uuid.UUID{uuid.Nil})

	suite.True(apperrors.IsValidation(err))
}

func (suite *MembershipServiceTestSuite) TestAddAthletesTeamNotFound() {
	teamID := uuid.New()
	expectTx(suite.tx, suite.repos)
	suite.teams.EXPECT().GetByIDForUpdate(gomock.Any(), teamID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.AddAthletes(suite.ctx, teamID, suite.ownerID, []uuid.UUID{uuid.New()})

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *MembershipServiceTestSuite) TestAddAthletesForeignTeamForbidden() {
	team := newTeam(uuid.New())
	expectTx(suite.tx, suite.repos)
	suite.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)

	_, err := suite.service.AddAthletes(suite.ctx, team.ID, suite.ownerID, []uuid.UUID{uuid.New()})

	suite.ErrorIs(err, apperrors.ErrTeamForbidden)
}

func (suite *MembershipServiceTestSuite) TestAddAthletesStoreFailureIsWrapped() {
	team := newTeam(suite.ownerID)
	athlete := newAthlete(suite.ownerID, nil)
	dbErr := errors.New("connection reset")

	expectTx(suite.tx, suite.repos)
	suite.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)
	suite.athletes.EXPECT().GetByIDsForUpdate(gomock.Any(), gomock.Any()).Return([]models.Athlete{athlete}, nil)
	suite.athletes.EXPECT().SetTeam(gomock.Any(), gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := suite.service.AddAthletes(suite.ctx, team.ID, suite.ownerID, []uuid.UUID{athlete.ID})

	suite.ErrorIs(err, dbErr)
}

func (suite *MembershipServiceTestSuite) TestRemoveAthletes() {
	a1 := newAthlete(suite.ownerID, nil)
	a2 := newAthlete(suite.ownerID, nil)
	team := newTeam(suite.ownerID, a1.ID, a2.ID)
	a1.TeamID = teamRef(team.ID)
	a2.TeamID = teamRef(team.ID)

	expectTx(suite.tx, suite.repos)
	suite.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)
	suite.athletes.EXPECT().GetByIDsForUpdate(gomock.Any(), []uuid.UUID{a1.ID}).Return([]models.Athlete{a1}, nil)
	suite.athletes.EXPECT().UnlinkFromTeam(gomock.Any(), []uuid.UUID{a1.ID}, team.ID).Return(int64(1), nil)
	suite.teams.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved *models.Team) error {
		suite.Equal([]uuid.UUID{a2.ID}, []uuid.UUID(saved.AthleteIDs))
		suite.Equal(int64(2), saved.Version)
		return nil
	})

	resp, err := suite.service.RemoveAthletes(suite.ctx, team.ID, suite.ownerID, []uuid.UUID{a1.ID})

	suite.Require().NoError(err)
	suite.Equal(1, resp.Changed)
	suite.Equal(1, resp.RosterSize)
}

func (suite *MembershipServiceTestSuite) TestRemoveAthletesTwiceConflicts() {
	athlete := newAthlete(suite.ownerID, nil)
	team := newTeam(suite.ownerID, athlete.ID)
	athlete.TeamID = teamRef(team.ID)

	// first removal
	expectTx(suite.tx, suite.repos)
	suite.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)
	suite.athletes.EXPECT().GetByIDsForUpdate(gomock.Any(), []uuid.UUID{athlete.ID}).Return([]models.Athlete{athlete}, nil)
	suite.athletes.EXPECT().UnlinkFromTeam(gomock.Any(), []uuid.UUID{athlete.ID}, team.ID).Return(int64(1), nil)
	suite.teams.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	_, err := suite.service.RemoveAthletes(suite.ctx, team.ID, suite.ownerID, []uuid.UUID{athlete.ID})
	suite.Require().NoError(err)

	// second removal sees the athlete unassigned
	unassigned := athlete
	unassigned.TeamID = nil
	expectTx(suite.tx, suite.repos)
	suite.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)
	suite.athletes.EXPECT().GetByIDsForUpdate(gomock.Any(), []uuid.UUID{athlete.ID}).Return([]models.Athlete{unassigned}, nil)

	_, err = suite.service.RemoveAthletes(suite.ctx, team.ID, suite.ownerID, []uuid.UUID{athlete.ID})

	membershipErr, ok := apperrors.AsMembership(err)
	suite.Require().True(ok)
	suite.True(membershipErr.Has(athlete.ID, apperrors.ReasonConflict))
	suite.Equal("athlete is not a member of this team", membershipErr.Violations[0].Message)
}

func (suite *MembershipServiceTestSuite) TestAssignRosterReplacesRoster() {
	keep := newAthlete(suite.ownerID, nil)
	drop := newAthlete(suite.ownerID, nil)
	team := newTeam(suite.ownerID, keep.ID, drop.ID)
	add := newAthlete(suite.ownerID, nil)

	suite.athletes.EXPECT().GetByIDsForUpdate(gomock.Any(), []uuid.UUID{add.ID}).Return([]models.Athlete{add}, nil)
	suite.athletes.EXPECT().SetTeam(gomock.Any(), []uuid.UUID{add.ID}, teamRef(team.ID)).Return(nil)
	suite.athletes.EXPECT().UnlinkFromTeam(gomock.Any(), []uuid.UUID{drop.ID}, team.ID).Return(int64(1), nil)

	err := suite.service.AssignRoster(suite.ctx, suite.repos, team, []uuid.UUID{add.ID, keep.ID}, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{add.ID, keep.ID}, []uuid.UUID(team.AthleteIDs))
}

func (suite *MembershipServiceTestSuite) TestAssignRosterEmptyKeepsEmpty() {
	team := newTeam(suite.ownerID)

	err := suite.service.AssignRoster(suite.ctx, suite.repos, team, nil, suite.ownerID)

	suite.Require().NoError(err)
	suite.Empty(team.AthleteIDs)
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
