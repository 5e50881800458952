//go:build integration
// +build integration

package repository_test

import (
	"context"
	"errors"
	"testing"

	"coaching-roster-backend/internal/repository"
	"coaching-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *repository.UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = repository.NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByEmail looks users up regardless of case and padding
func (suite *UserRepositoryTestSuite) TestCreateAndGetByEmail() {
	user := suite.factories.User.WithEmail("coach@example.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	got, err := suite.repo.GetByEmail(suite.ctx, "  Coach@Example.COM ")
	suite.Require().NoError(err)
	suite.Equal(user.ID, got.ID)

	got, err = suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("coach@example.com", got.Email)
}

// TestCreateDuplicateEmail tests the unique email index
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.User.WithEmail("dup@example.com")))

	err := suite.repo.Create(suite.ctx, suite.factories.User.WithEmail("dup@example.com"))

	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestGetByIDNotFound tests retrieving a missing user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestSetToken stores and clears the session token
func (suite *UserRepositoryTestSuite) TestSetToken() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	suite.Require().NoError(suite.repo.SetToken(suite.ctx, user.ID, "token-1"))
	got, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("token-1", got.Token)

	suite.Require().NoError(suite.repo.SetToken(suite.ctx, user.ID, ""))
	got, err = suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Empty(got.Token)
}

// TestUpdateProfile persists profile fields
func (suite *UserRepositoryTestSuite) TestUpdateProfile() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	user.Location = "Odesa"
	user.Avatar = "https://cdn.example.com/avatars/a"
	user.AvatarPublicID = "avatars/a"
	suite.Require().NoError(suite.repo.Update(suite.ctx, user))

	got, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("Odesa", got.Location)
	suite.Equal("avatars/a", got.AvatarPublicID)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
