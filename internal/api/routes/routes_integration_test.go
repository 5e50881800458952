//go:build integration
// +build integration

package routes_test

import (
	"net/http"
	"testing"

	"coaching-roster-backend/internal/api/handlers"
	"coaching-roster-backend/internal/api/routes"
	"coaching-roster-backend/internal/auth"
	"coaching-roster-backend/internal/database/models"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/mocks"
	"coaching-roster-backend/internal/service"
	"coaching-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RosterFlowTestSuite drives the roster endpoints against a real database
type RosterFlowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	httpSuite     *testutils.HTTPTestSuite
}

func (suite *RosterFlowTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
}

func (suite *RosterFlowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
	testutils.CleanupSharedContainer()
}

func (suite *RosterFlowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	store := mocks.NewMockObjectStore(gomock.NewController(suite.T()))
	router, err := routes.SetupRoutes(suite.baseTestSuite.DB, suite.baseTestSuite.Config, routes.Dependencies{Store: store, Mailer: auth.NoopMailer{}})
	suite.Require().NoError(err)
	suite.httpSuite = &testutils.HTTPTestSuite{Router: router}
}

func (suite *RosterFlowTestSuite) register(email string) map[string]string {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/users/register", auth.RegisterRequest{
		Email:    email,
		Password: "secret123",
		Username: "coach",
	})
	var resp auth.AuthResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	return map[string]string{"Authorization": "Bearer " + resp.Token}
}

func (suite *RosterFlowTestSuite) do(method, url string, body interface{}, headers map[string]string, status int, target interface{}) {
	w := suite.httpSuite.MakeRequestWithHeaders(method, url, body, headers)
	suite.Require().Equal(status, w.Code, w.Body.String())
	if target != nil {
		testutils.ParseJSONResponse(suite.T(), w, target)
	}
}

func (suite *RosterFlowTestSuite) createAthlete(headers map[string]string, first string) uuid.UUID {
	var athlete models.Athlete
	suite.do(http.MethodPost, "/api/v1/athletes", map[string]interface{}{
		"firstName":          first,
		"lastName":           "Test",
		"birthDate":          "2012-01-01",
		"currentInstitution": "School 5",
		"coach":              "Head Coach",
		"dateOfAdmission":    "2022-09-01",
	}, headers, http.StatusCreated, &athlete)
	return athlete.ID
}

func (suite *RosterFlowTestSuite) teamOf(headers map[string]string, athleteID uuid.UUID) *uuid.UUID {
	var athlete models.Athlete
	suite.do(http.MethodGet, "/api/v1/athletes/"+athleteID.String(), nil, headers, http.StatusOK, &athlete)
	return athlete.TeamID
}

func (suite *RosterFlowTestSuite) TestRosterLifecycle() {
	coach := suite.register("coach@example.com")
	a1 := suite.createAthlete(coach, "Anna")
	a2 := suite.createAthlete(coach, "Bohdan")

	var t1 service.TeamResponse
	suite.do(http.MethodPost, "/api/v1/teams", map[string]interface{}{
		"name": "U14", "ageCategory": "U14", "athleteIds": []uuid.UUID{a1},
	}, coach, http.StatusCreated, &t1)
	suite.Equal([]uuid.UUID{a1}, t1.AthleteIDs)
	suite.Equal(&t1.ID, suite.teamOf(coach, a1))

	// a1 already plays for t1, so the whole second team is rejected
	var conflict handlers.MembershipErrorResponse
	suite.do(http.MethodPost, "/api/v1/teams", map[string]interface{}{
		"name": "U16", "ageCategory": "U16", "athleteIds": []uuid.UUID{a1, a2},
	}, coach, http.StatusConflict, &conflict)
	suite.Require().Len(conflict.Invalid, 1)
	suite.Equal(a1, conflict.Invalid[0].AthleteID)
	suite.Equal(apperrors.ReasonConflict, conflict.Invalid[0].Reason)
	suite.Nil(suite.teamOf(coach, a2))

	var list service.TeamListResponse
	suite.do(http.MethodGet, "/api/v1/teams", nil, coach, http.StatusOK, &list)
	suite.Equal(int64(1), list.Total)

	var change service.RosterChangeResponse
	suite.do(http.MethodPatch, "/api/v1/teams/"+t1.ID.String()+"/athletes/add", map[string]interface{}{"athleteIds": []uuid.UUID{a2}}, coach, http.StatusOK, &change)
	suite.Equal(1, change.Changed)
	suite.Equal(2, change.RosterSize)

	suite.do(http.MethodPatch, "/api/v1/teams/"+t1.ID.String()+"/athletes/remove", map[string]interface{}{"athleteIds": []uuid.UUID{a2}}, coach, http.StatusOK, &change)
	suite.do(http.MethodPatch, "/api/v1/teams/"+t1.ID.String()+"/athletes/remove", map[string]interface{}{"athleteIds": []uuid.UUID{a2}}, coach, http.StatusConflict, nil)
	suite.Nil(suite.teamOf(coach, a2))

	// Someone else cannot see or change the team
	stranger := suite.register("stranger@example.com")
	suite.do(http.MethodGet, "/api/v1/teams/"+t1.ID.String(), nil, stranger, http.StatusForbidden, nil)
	suite.do(http.MethodGet, "/api/v1/athletes/"+a1.String(), nil, stranger, http.StatusForbidden, nil)

	var deleted service.DeleteTeamResponse
	suite.do(http.MethodDelete, "/api/v1/teams/"+t1.ID.String(), nil, coach, http.StatusOK, &deleted)
	suite.Equal(int64(1), deleted.UnlinkedAthletes)
	suite.Nil(suite.teamOf(coach, a1))
	suite.do(http.MethodGet, "/api/v1/teams/"+t1.ID.String(), nil, coach, http.StatusNotFound, nil)
}

func (suite *RosterFlowTestSuite) TestSessionLifecycle() {
	coach := suite.register("session@example.com")

	var current auth.CurrentUserResponse
	suite.do(http.MethodGet, "/api/auth/users/current", nil, coach, http.StatusOK, &current)
	suite.Equal("session@example.com", current.Email)

	suite.do(http.MethodPost, "/api/auth/users/logout", nil, coach, http.StatusOK, nil)
	suite.do(http.MethodGet, "/api/auth/users/current", nil, coach, http.StatusUnauthorized, nil)

	var login auth.AuthResponse
	suite.do(http.MethodPost, "/api/auth/users/login", auth.LoginRequest{Email: "Session@Example.com", Password: "secret123"}, nil, http.StatusOK, &login)
	suite.do(http.MethodGet, "/api/v1/users/storage", nil, map[string]string{"Authorization": "Bearer " + login.Token}, http.StatusOK, nil)
}

func TestRosterFlowTestSuite(t *testing.T) {
	suite.Run(t, new(RosterFlowTestSuite))
}
