package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ForbiddenError is returned when a user touches an entity owned by someone else
type ForbiddenError struct {
	Entity string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("access to this %s is forbidden", e.Entity)
}

// Is enables errors.Is() comparison for ForbiddenError
func (e *ForbiddenError) Is(target error) bool {
	t, ok := target.(*ForbiddenError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a violated membership or state invariant
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// DependencyError wraps an unexpected failure of the store or the CDN
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s failure: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// PayloadTooLargeError is returned when a single upload exceeds the per-file ceiling
type PayloadTooLargeError struct {
	LimitBytes  int64
	ActualBytes int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("file is too large: %.2f MB, maximum is %.2f MB", BytesToMB(e.ActualBytes), BytesToMB(e.LimitBytes))
}

// QuotaExceededError is returned when an upload would push a user past the storage limit
type QuotaExceededError struct {
	RemainingBytes int64
	NeededBytes    int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("storage limit exceeded: %.2f MB remaining, %.2f MB needed", e.RemainingMB(), e.NeededMB())
}

// RemainingMB returns the remaining quota in megabytes, never below zero
func (e *QuotaExceededError) RemainingMB() float64 {
	if e.RemainingBytes < 0 {
		return 0
	}
	return BytesToMB(e.RemainingBytes)
}

// NeededMB returns the size of the rejected upload in megabytes
func (e *QuotaExceededError) NeededMB() float64 {
	return BytesToMB(e.NeededBytes)
}

// ViolationReason classifies why a single athlete failed membership validation
type ViolationReason string

const (
	ReasonNotFound  ViolationReason = "not_found"
	ReasonForbidden ViolationReason = "forbidden"
	ReasonConflict  ViolationReason = "conflict"
)

// Violation describes one athlete that cannot take part in a roster change
type Violation struct {
	AthleteID uuid.UUID       `json:"id"`
	Reason    ViolationReason `json:"reason"`
	Message   string          `json:"error"`
}

// MembershipError carries every athlete that failed roster validation so the
// caller can fix all of them in a single round trip.
type MembershipError struct {
	Violations []Violation
}

func (e *MembershipError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.AthleteID, v.Message))
	}
	return fmt.Sprintf("invalid athletes for team: %s", strings.Join(parts, "; "))
}

// Has reports whether the athlete has a violation with the given reason
func (e *MembershipError) Has(athleteID uuid.UUID, reason ViolationReason) bool {
	for _, v := range e.Violations {
		if v.AthleteID == athleteID && v.Reason == reason {
			return true
		}
	}
	return false
}

// Entity Not Found Errors
var (
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrAthleteNotFound = &NotFoundError{Entity: "athlete"}
	ErrPhotoNotFound   = &NotFoundError{Entity: "photo"}
)

// Forbidden Errors
var (
	ErrTeamForbidden    = &ForbiddenError{Entity: "team"}
	ErrAthleteForbidden = &ForbiddenError{Entity: "athlete"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Context: "with this email"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid credentials"}
	ErrTokenExpired       = &AuthenticationError{Message: "token expired, please login again"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid token"}
	ErrNotAuthorized      = &AuthenticationError{Message: "user not authorized"}
)

// Business Logic Errors
var (
	ErrNothingToUpdate         = &ValidationError{Message: "no data to update"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrTooManyAttempts         = errors.New("too many login attempts, try again later")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsDependency checks if an error is a DependencyError
func IsDependency(err error) bool {
	var depErr *DependencyError
	return errors.As(err, &depErr)
}

// AsMembership extracts a MembershipError from err
func AsMembership(err error) (*MembershipError, bool) {
	var membershipErr *MembershipError
	ok := errors.As(err, &membershipErr)
	return membershipErr, ok
}

// AsQuotaExceeded extracts a QuotaExceededError from err
func AsQuotaExceeded(err error) (*QuotaExceededError, bool) {
	var quotaErr *QuotaExceededError
	ok := errors.As(err, &quotaErr)
	return quotaErr, ok
}

// AsPayloadTooLarge extracts a PayloadTooLargeError from err
func AsPayloadTooLarge(err error) (*PayloadTooLargeError, bool) {
	var payloadErr *PayloadTooLargeError
	ok := errors.As(err, &payloadErr)
	return payloadErr, ok
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewDependencyError wraps err as a failure of the named dependency
func NewDependencyError(dependency string, err error) error {
	return &DependencyError{Dependency: dependency, Err: err}
}

// BytesToMB converts bytes to megabytes (MiB)
func BytesToMB(b int64) float64 {
	return float64(b) / (1024 * 1024)
}
