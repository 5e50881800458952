package handlers

import (
	"net/http"

	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MembershipErrorResponse lists every athlete rejected by a roster change
type MembershipErrorResponse struct {
	Error   string                `json:"error"`
	Invalid []apperrors.Violation `json:"invalid"`
}

// QuotaErrorResponse is returned when an upload does not fit the storage limit
type QuotaErrorResponse struct {
	Error       string  `json:"error"`
	RemainingMB float64 `json:"remainingMB"`
	NeededMB    float64 `json:"neededMB"`
}

// respondError maps service errors to HTTP responses
func respondError(c *gin.Context, err error) {
	if membershipErr, ok := apperrors.AsMembership(err); ok {
		c.JSON(http.StatusConflict, MembershipErrorResponse{
			Error:   "some athletes cannot be assigned to this team",
			Invalid: membershipErr.Violations,
		})
		return
	}
	if quotaErr, ok := apperrors.AsQuotaExceeded(err); ok {
		c.JSON(http.StatusRequestEntityTooLarge, QuotaErrorResponse{
			Error:       quotaErr.Error(),
			RemainingMB: roundMB(quotaErr.RemainingMB()),
			NeededMB:    roundMB(quotaErr.NeededMB()),
		})
		return
	}
	if _, ok := apperrors.AsPayloadTooLarge(err); ok {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}

	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err), apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsDependency(err):
		logger.WithContext(c.Request.Context()).WithError(err).Error("Upstream dependency failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func roundMB(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
