package handlers_test

import (
	"net/http"
	"testing"

	"coaching-roster-backend/internal/api/handlers"
	"coaching-roster-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// unreachableDB opens a pool against a port nothing listens on; gorm connects lazily
func unreachableDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=x password=x dbname=x sslmode=disable connect_timeout=1",
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestHealthReportsDatabaseDown(t *testing.T) {
	s := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(unreachableDB(t))
	s.Router.GET("/health", handler.Health)
	s.Router.GET("/health/ready", handler.Ready)
	s.Router.GET("/health/live", handler.Live)

	var health handlers.HealthResponse
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &health)
	assert.Equal(t, "unhealthy", health.Status)
	assert.Equal(t, handlers.Version, health.Version)
	assert.Contains(t, health.Services["database"], "error")

	var ready map[string]interface{}
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &ready)
	assert.Equal(t, false, ready["ready"])

	var live map[string]interface{}
	testutils.AssertJSONResponse(t, s.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &live)
	assert.Equal(t, true, live["alive"])
}
