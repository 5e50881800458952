package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"coaching-roster-backend/internal/config"
	"coaching-roster-backend/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

const (
	pgUser     = "roster"
	pgPassword = "roster"
	pgDatabase = "roster_test"
)

// rosterTables are truncated between tests, children first
var rosterTables = []string{
	"relatives",
	"medical_examinations",
	"previous_coaches",
	"athletes",
	"teams",
	"users",
}

// postgresContainer is the one Postgres instance shared by every integration suite in a test binary
type postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
}

var shared postgresContainer

// BaseTestSuite gives integration suites a migrated database and matching config
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to start test database: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.config}
}

// CleanupSharedContainer closes the pool and removes the container. Test binaries
// call it once from TestMain or their last suite teardown.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool != nil && shared.resource != nil {
		if err := shared.pool.Purge(shared.resource); err != nil {
			log.Printf("WARN: could not remove postgres container: %v", err)
		}
		shared.pool = nil
		shared.resource = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.truncate() }
func (s *BaseTestSuite) TearDownTest() { s.truncate() }

// TeardownTestSuite leaves the container running for the next suite
func (s *BaseTestSuite) TeardownTestSuite() { s.truncate() }

func (s *BaseTestSuite) truncate() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	for _, table := range rosterTables {
		if migrator.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" CASCADE`)
		}
	}
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	c.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	err = pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)
		return conn.Ping(ctx)
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	c.db = db

	c.config = &config.Config{
		DatabaseURL:       dsn,
		Port:              "8080",
		LogLevel:          "debug",
		Environment:       "test",
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		StorageLimitBytes: 500 * 1024 * 1024,
		MaxPhotoBytes:     5 * 1024 * 1024,
		GalleryPageSize:   30,
		TeamPageSize:      5,
	}
	return nil
}
