package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coaching-roster-backend/internal/auth"
	"coaching-roster-backend/internal/database/models"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestAuthConfig(t *testing.T) {
	t.Run("fills defaults", func(t *testing.T) {
		config := &auth.AuthConfig{JWTSecret: "test-signing-key"}

		require.NoError(t, config.ValidateConfig())
		assert.Equal(t, auth.DefaultTokenTTL, config.TokenTTL)
		assert.NotEmpty(t, config.Issuer)
	})

	t.Run("requires secret", func(t *testing.T) {
		config := &auth.AuthConfig{}

		assert.Error(t, config.ValidateConfig())
	})

	t.Run("rejects negative ttl", func(t *testing.T) {
		config := &auth.AuthConfig{JWTSecret: "k", TokenTTL: -time.Second}

		assert.Error(t, config.ValidateConfig())
	})
}

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	users       *mocks.MockUserRepositoryInterface
	authService *auth.AuthService
	ctx         context.Context
	user        *models.User
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = suite.newService(time.Hour)
	suite.ctx = context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	suite.Require().NoError(err)
	suite.user = &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "coach@example.com",
		Username:     "coach",
		PasswordHash: string(hash),
	}
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) newService(ttl time.Duration) *auth.AuthService {
	service, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: "test-signing-key", TokenTTL: ttl}, suite.users, validator.New())
	suite.Require().NoError(err)
	return service
}

func (suite *AuthServiceTestSuite) TestRegister() {
	suite.users.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *models.User) error {
		suite.Equal("new@example.com", user.Email)
		suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		suite.NotEmpty(user.Token)
		return nil
	})

	resp, err := suite.authService.Register(suite.ctx, &auth.RegisterRequest{
		Email:    " New@Example.com",
		Password: "secret123",
		Username: "newcoach",
	})

	suite.Require().NoError(err)
	suite.Equal("new@example.com", resp.Email)
	claims, err := suite.authService.ValidateJWT(resp.Token)
	suite.Require().NoError(err)
	suite.Equal(resp.ID.String(), claims.UserID)
}

func (suite *AuthServiceTestSuite) TestRegisterExistingEmail() {
	suite.users.EXPECT().GetByEmail(gomock.Any(), suite.user.Email).Return(suite.user, nil)

	_, err := suite.authService.Register(suite.ctx, &auth.RegisterRequest{
		Email:    suite.user.Email,
		Password: "secret123",
		Username: "coach",
	})

	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *AuthServiceTestSuite) TestRegisterValidation() {
	_, err := suite.authService.Register(suite.ctx, &auth.RegisterRequest{
		Email:    "not-an-email",
		Password: "secret123",
		Username: "coach",
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *AuthServiceTestSuite) TestLoginIssuesAndStoresToken() {
	suite.users.EXPECT().GetByEmail(gomock.Any(), suite.user.Email).Return(suite.user, nil)
	var stored string
	suite.users.EXPECT().SetToken(gomock.Any(), suite.user.ID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, token string) error {
		stored = token
		return nil
	})

	resp, err := suite.authService.Login(suite.ctx, &auth.LoginRequest{Email: suite.user.Email, Password: "secret123"})

	suite.Require().NoError(err)
	suite.Equal(stored, resp.Token)
}

func (suite *AuthServiceTestSuite) TestLoginReusesValidToken() {
	token, err := suite.authService.GenerateJWT(suite.user)
	suite.Require().NoError(err)
	suite.user.Token = token
	suite.users.EXPECT().GetByEmail(gomock.Any(), suite.user.Email).Return(suite.user, nil)

	resp, err := suite.authService.Login(suite.ctx, &auth.LoginRequest{Email: suite.user.Email, Password: "secret123"})

	suite.Require().NoError(err)
	suite.Equal(token, resp.Token)
}

func (suite *AuthServiceTestSuite) TestLoginFailuresLookTheSame() {
	suite.users.EXPECT().GetByEmail(gomock.Any(), suite.user.Email).Return(suite.user, nil)
	suite.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, wrongPassword := suite.authService.Login(suite.ctx, &auth.LoginRequest{Email: suite.user.Email, Password: "wrong-pass"})
	_, unknownEmail := suite.authService.Login(suite.ctx, &auth.LoginRequest{Email: "ghost@example.com", Password: "secret123"})

	suite.ErrorIs(wrongPassword, apperrors.ErrInvalidCredentials)
	suite.ErrorIs(unknownEmail, apperrors.ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogout() {
	suite.users.EXPECT().SetToken(gomock.Any(), suite.user.ID, "").Return(nil)

	suite.NoError(suite.authService.Logout(suite.ctx, suite.user.ID))
}

func (suite *AuthServiceTestSuite) TestAuthenticate() {
	token, err := suite.authService.GenerateJWT(suite.user)
	suite.Require().NoError(err)
	suite.user.Token = token
	suite.users.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)

	user, err := suite.authService.Authenticate(suite.ctx, token)

	suite.Require().NoError(err)
	suite.Equal(suite.user.ID, user.ID)
}

func (suite *AuthServiceTestSuite) TestAuthenticateRejectsReplacedToken() {
	old, err := suite.authService.GenerateJWT(suite.user)
	suite.Require().NoError(err)
	current, err := suite.authService.GenerateJWT(suite.user)
	suite.Require().NoError(err)
	suite.user.Token = current
	suite.users.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)

	_, err = suite.authService.Authenticate(suite.ctx, old)

	suite.ErrorIs(err, apperrors.ErrNotAuthorized)
}

func (suite *AuthServiceTestSuite) TestAuthenticateGarbage() {
	_, err := suite.authService.Authenticate(suite.ctx, "not-a-jwt")

	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestAuthenticateExpiredClearsToken() {
	expiring := suite.newService(time.Nanosecond)
	token, err := expiring.GenerateJWT(suite.user)
	suite.Require().NoError(err)
	suite.user.Token = token
	suite.users.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(suite.user, nil)
	suite.users.EXPECT().SetToken(gomock.Any(), suite.user.ID, "").Return(nil)

	_, err = expiring.Authenticate(suite.ctx, token)

	suite.ErrorIs(err, apperrors.ErrTokenExpired)
}

func (suite *AuthServiceTestSuite) TestAuthenticateStoreFailure() {
	token, err := suite.authService.GenerateJWT(suite.user)
	suite.Require().NoError(err)
	suite.users.EXPECT().GetByID(gomock.Any(), suite.user.ID).Return(nil, errors.New("connection reset"))

	_, err = suite.authService.Authenticate(suite.ctx, token)

	suite.Error(err)
	suite.False(apperrors.IsAuthentication(err))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
