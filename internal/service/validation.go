package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	apperrors "coaching-roster-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// validate runs struct validation and reports the first failing field as a ValidationError
func validate(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(lowerFirst(fe.Field()), describeTag(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// uniqueIDs drops duplicates and nil ids, keeping the first occurrence
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// MaxOffset caps the row offset of any listing
const MaxOffset = math.MaxInt32

// pageOffset returns the offset of page, saturating at MaxOffset
func pageOffset(page, pageSize int) int {
	page = normalizePage(page)
	if pageSize <= 0 {
		return 0
	}
	if page-1 > MaxOffset/pageSize {
		return MaxOffset
	}
	return (page - 1) * pageSize
}
