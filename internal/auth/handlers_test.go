package auth_test

import (
	"errors"
	"net/http"
	"testing"

	"coaching-roster-backend/internal/auth"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/mocks"
	"coaching-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AuthHandlerTestSuite tests the auth HTTP handlers
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	authenticator *mocks.MockAuthenticator
	mailer        *mocks.MockMailer
	httpSuite     *testutils.HTTPTestSuite
	userID        uuid.UUID
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.authenticator = mocks.NewMockAuthenticator(suite.ctrl)
	suite.mailer = mocks.NewMockMailer(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	limiter := auth.NewLoginLimiter(auth.LimiterConfig{}, suite.mailer)
	handler := auth.NewAuthHandler(suite.authenticator, limiter)

	router := suite.httpSuite.Router
	router.POST("/api/auth/users/register", handler.Register)
	router.POST("/api/auth/users/login", limiter.Middleware(), handler.Login)
	router.POST("/api/auth/users/logout", handler.Logout)
	signedIn := router.Group("/me", testutils.AsUser(suite.userID))
	signedIn.POST("/logout", handler.Logout)
	signedIn.GET("/current", handler.Current)
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) TestRegister() {
	req := &auth.RegisterRequest{Email: "new@example.com", Password: "secret123", Username: "newcoach"}
	suite.authenticator.EXPECT().Register(gomock.Any(), req).Return(&auth.AuthResponse{ID: suite.userID, Email: req.Email, Token: "t"}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/users/register", req)

	var resp auth.AuthResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Equal("t", resp.Token)
}

func (suite *AuthHandlerTestSuite) TestRegisterErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "Exists", err: apperrors.ErrUserExists, status: http.StatusConflict},
		{name: "Validation", err: apperrors.NewValidationError("email", "failed on the 'email' rule"), status: http.StatusBadRequest},
		{name: "Internal", err: errors.New("db down"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.authenticator.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/users/register", map[string]string{"email": "x@example.com"})

			suite.Equal(tc.status, w.Code)
		})
	}
}

func (suite *AuthHandlerTestSuite) TestRegisterInvalidJSON() {
	w := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/auth/users/register", "not-an-object", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLoginSuccessResetsAttempts() {
	creds := map[string]string{"email": "coach@example.com", "password": "secret123"}
	gomock.InOrder(
		suite.authenticator.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials).Times(auth.DefaultEmailAttempts-1),
		suite.authenticator.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&auth.AuthResponse{Token: "t"}, nil),
		suite.authenticator.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials).Times(auth.DefaultEmailAttempts),
	)

	for i := 0; i < auth.DefaultEmailAttempts-1; i++ {
		testutils.AssertErrorResponse(suite.T(), suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/users/login", creds), http.StatusUnauthorized, "invalid credentials")
	}
	suite.Equal(http.StatusOK, suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/users/login", creds).Code)

	// The success cleared the email bucket, so a full budget is available again
	for i := 0; i < auth.DefaultEmailAttempts; i++ {
		suite.Equal(http.StatusUnauthorized, suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/users/login", creds).Code)
	}
}

func (suite *AuthHandlerTestSuite) TestLogout() {
	suite.authenticator.EXPECT().Logout(gomock.Any(), suite.userID).Return(nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/me/logout", nil)

	var resp auth.AuthLogoutResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal("User logged out successfully", resp.Message)
}

func (suite *AuthHandlerTestSuite) TestLogoutWithoutUser() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/users/logout", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "Authentication required")
}

func (suite *AuthHandlerTestSuite) TestCurrent() {
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/me/current", nil)

	var resp auth.CurrentUserResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal("coach@example.com", resp.Email)
	suite.Equal("coach", resp.Username)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
