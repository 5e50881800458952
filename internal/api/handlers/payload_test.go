package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "coaching-roster-backend/internal/errors"
	"coaching-roster-backend/internal/service"
	"coaching-roster-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFormToJSON(t *testing.T) {
	out := formToJSON(map[string][]string{
		"name":         {"U14 Boys"},
		"athleteIds":   {"a"},
		"tags[]":       {"x", "", "y"},
		"repeated":     {"1", "2"},
		"deleteAvatar": {"true"},
		"relatives":    {`[{"name":"Iryna"}]`},
		"data":         {"ignored"},
		"notJSON":      {"[broken"},
	})

	assert.Equal(t, "U14 Boys", out["name"])
	assert.Equal(t, []string{"a"}, out["athleteIds"])
	assert.Equal(t, []string{"x", "y"}, out["tags"])
	assert.Equal(t, []string{"1", "2"}, out["repeated"])
	assert.Equal(t, true, out["deleteAvatar"])
	assert.Equal(t, []interface{}{map[string]interface{}{"name": "Iryna"}}, out["relatives"])
	assert.Equal(t, "[broken", out["notJSON"])
	assert.NotContains(t, out, "data")
}

func TestFormToJSONArrayFieldAsJSON(t *testing.T) {
	out := formToJSON(map[string][]string{"athleteIds": {`["a","b"]`}})

	assert.Equal(t, []interface{}{"a", "b"}, out["athleteIds"])
}

func TestBindPayloadEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", nil)

	var target struct{ Name string }
	assert.NoError(t, bindPayload(c, &target))
	assert.Empty(t, target.Name)
}

func TestBindPayloadMultipartFieldsUseJSONNames(t *testing.T) {
	gin.SetMode(gin.TestMode)
	first, second := uuid.New(), uuid.New()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = testutils.NewMultipartRequest(t, http.MethodPost, "/", map[string]string{
		"name":        "U10",
		"ageCategory": "U10",
		"athleteIds":  `["` + first.String() + `","` + second.String() + `"]`,
	})

	var req service.CreateTeamRequest
	assert.NoError(t, bindPayload(c, &req))
	assert.Equal(t, "U10", req.Name)
	assert.Equal(t, "U10", req.AgeCategory)
	assert.Equal(t, []uuid.UUID{first, second}, req.AthleteIDs)
}

func TestBindPayloadMultipartDataField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = testutils.NewMultipartRequest(t, http.MethodPost, "/", map[string]string{
		"data": `{"name":"U18","ageCategory":"U18"}`,
		"name": "ignored",
	})

	var req service.CreateTeamRequest
	assert.NoError(t, bindPayload(c, &req))
	assert.Equal(t, "U18", req.Name)
	assert.Empty(t, req.AthleteIDs)
}

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"Validation", apperrors.NewValidationError("name", "is required"), http.StatusBadRequest},
		{"Authentication", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"Forbidden", apperrors.ErrTeamForbidden, http.StatusForbidden},
		{"Not found", apperrors.ErrTeamNotFound, http.StatusNotFound},
		{"Conflict", apperrors.NewConflictError("athlete is not a member of this team"), http.StatusConflict},
		{"Exists", apperrors.ErrUserExists, http.StatusConflict},
		{"Membership", &apperrors.MembershipError{Violations: []apperrors.Violation{{AthleteID: uuid.New(), Reason: apperrors.ReasonNotFound}}}, http.StatusConflict},
		{"Quota", &apperrors.QuotaExceededError{RemainingBytes: -5, NeededBytes: 10}, http.StatusRequestEntityTooLarge},
		{"Payload", &apperrors.PayloadTooLargeError{LimitBytes: 1, ActualBytes: 2}, http.StatusRequestEntityTooLarge},
		{"Dependency", apperrors.NewDependencyError("cdn", errors.New("down")), http.StatusBadGateway},
		{"Other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRoundMB(t *testing.T) {
	assert.Equal(t, 1.5, roundMB(1.499999))
	assert.Equal(t, 0.0, roundMB(0))
	assert.Equal(t, 350.0, roundMB(350))
}
