package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coaching-roster-backend/internal/database/models"
	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/logger"
	"coaching-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=service.go -destination=../mocks/auth_mocks.go -package=mocks

// Authenticator is what the HTTP layer needs from the auth service
type Authenticator interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthService provides password authentication and session tokens
type AuthService struct {
	config    *AuthConfig
	users     repository.UserRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"id" example:"7f1c0d7e-3a52-4a7b-9a49-1b0c1f7a2b3c"`
	Email                string `json:"email" example:"coach@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,min=3,max=40"`
	Password string `json:"password" validate:"required,min=6,max=20"`
	Username string `json:"username" validate:"required,min=3,max=25"`
}

// LoginRequest represents the request to sign in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,min=3,max=40"`
	Password string `json:"password" validate:"required,min=6,max=20"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Token    string    `json:"token"`
}

// CurrentUserResponse represents the signed-in user
type CurrentUserResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"User logged out successfully"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface, validator *validator.Validate) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:    config,
		users:     users,
		validator: validator,
		now:       time.Now,
	}, nil
}

// Register creates an account and signs it in
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        email,
		PasswordHash: string(hash),
		Username:     strings.TrimSpace(req.Username),
	}
	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	user.Token = token

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("User registered")
	return &AuthResponse{ID: user.ID, Email: user.Email, Username: user.Username, Token: token}, nil
}

// Login checks credentials. A still valid stored token is returned as is,
// otherwise a new one is issued and stored.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Token != "" {
		if _, err := s.ValidateJWT(user.Token); err == nil {
			return &AuthResponse{ID: user.ID, Email: user.Email, Username: user.Username, Token: user.Token}, nil
		}
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	if err := s.users.SetToken(ctx, user.ID, token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &AuthResponse{ID: user.ID, Email: user.Email, Username: user.Username, Token: token}, nil
}

// Logout clears the stored session token
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.SetToken(ctx, userID, ""); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token to its user. The token must be the
// one currently stored for the user. Expired tokens are cleared.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.ValidateJWT(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.clearExpired(ctx, claims, token)
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotAuthorized
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.Token != token {
		return nil, apperrors.ErrNotAuthorized
	}
	return user, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token. On expiry the parsed claims
// are returned together with an error wrapping jwt.ErrTokenExpired.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return claims, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (s *AuthService) clearExpired(ctx context.Context, claims *AuthClaims, token string) {
	if claims == nil {
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user.Token != token {
		return
	}
	if err := s.users.SetToken(ctx, userID, ""); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to clear expired token")
	}
}

func (s *AuthService) validate(req interface{}) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
