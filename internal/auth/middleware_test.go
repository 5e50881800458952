package auth_test

import (
	"errors"
	"net/http"
	"testing"

	"coaching-roster-backend/internal/auth"
	"coaching-roster-backend/internal/database/models"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/mocks"
	"coaching-roster-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthMiddlewareTestSuite tests RequireAuth
type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	authenticator *mocks.MockAuthenticator
	httpSuite     *testutils.HTTPTestSuite
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.authenticator = mocks.NewMockAuthenticator(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	middleware := auth.NewAuthMiddleware(suite.authenticator)
	suite.httpSuite.Router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		id, _ := auth.GetUserID(c)
		email, _ := auth.GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "email": email})
	})
}

func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/protected", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "Bearer")
}

func (suite *AuthMiddlewareTestSuite) TestEmptyToken() {
	w := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, map[string]string{"Authorization": "Bearer   "})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "Token not provided")
}

func (suite *AuthMiddlewareTestSuite) TestRejectedToken() {
	suite.authenticator.EXPECT().Authenticate(gomock.Any(), "stale").Return(nil, apperrors.ErrTokenExpired)

	w := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, map[string]string{"Authorization": "Bearer stale"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "token expired")
}

func (suite *AuthMiddlewareTestSuite) TestStoreFailureIsStillUnauthorized() {
	suite.authenticator.EXPECT().Authenticate(gomock.Any(), "tok").Return(nil, errors.New("db down"))

	w := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, map[string]string{"Authorization": "Bearer tok"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "Unauthorized")
}

func (suite *AuthMiddlewareTestSuite) TestSetsUserContext() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "coach@example.com"}
	suite.authenticator.EXPECT().Authenticate(gomock.Any(), "good").Return(user, nil)

	w := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/protected", nil, map[string]string{"Authorization": "Bearer good"})

	var body map[string]string
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &body)
	suite.Equal(user.ID.String(), body["id"])
	suite.Equal("coach@example.com", body["email"])
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
