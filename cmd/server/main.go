package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coaching-roster-backend/internal/api/routes"
	"coaching-roster-backend/internal/auth"
	"coaching-roster-backend/internal/cdn"
	"coaching-roster-backend/internal/config"
	"coaching-roster-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "coaching-roster-backend/docs" // This is needed for swag
)

//	@title			Coaching Roster Backend API
//	@version		1.0
//	@description	Backend API for coaches managing athletes, team rosters and team photo galleries.

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := cdn.NewS3Store(ctx, cdn.S3Config{
		Endpoint:        cfg.S3Endpoint,
		Region:          cfg.S3Region,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Bucket:          cfg.S3Bucket,
		PublicBaseURL:   cfg.CDNPublicBaseURL,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize object storage: ", err)
	}

	var mailer auth.Mailer = auth.NoopMailer{}
	if cfg.SMTPHost != "" {
		mailer = auth.NewSMTPMailer(auth.SMTPConfig{
			Host:             cfg.SMTPHost,
			Port:             cfg.SMTPPort,
			User:             cfg.SMTPUser,
			Password:         cfg.SMTPPassword,
			From:             cfg.SMTPFrom,
			PasswordResetURL: cfg.PasswordResetURL,
		})
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, routes.Dependencies{Store: store, Mailer: mailer})
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
