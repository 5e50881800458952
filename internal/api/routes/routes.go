package routes

import (
	"coaching-roster-backend/internal/api/handlers"
	"coaching-roster-backend/internal/api/middleware"
	"coaching-roster-backend/internal/auth"
	"coaching-roster-backend/internal/cdn"
	"coaching-roster-backend/internal/config"
	"coaching-roster-backend/internal/repository"
	"coaching-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Upload form fields
const (
	fieldAvatar        = "avatar"
	fieldAthleteAvatar = "athlete-avatar"
	fieldTeamLogo      = "team-logo"
	fieldPhoto         = "photo"
)

// Dependencies are the external collaborators the router is built on
type Dependencies struct {
	Store  cdn.ObjectStore
	Mailer auth.Mailer
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	athleteRepo := repository.NewAthleteRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	transactor := repository.NewTransactor(db)

	// Initialize services
	quotaService := service.NewQuotaService(teamRepo, cfg.StorageLimitBytes)
	membershipService := service.NewMembershipService(transactor)
	teamService := service.NewTeamService(teamRepo, athleteRepo, transactor, membershipService, deps.Store, validate, cfg.TeamPageSize)
	galleryService := service.NewGalleryService(teamRepo, transactor, quotaService, deps.Store, service.GalleryOptions{
		MaxPhotoBytes: cfg.MaxPhotoBytes,
		PageSize:      cfg.GalleryPageSize,
	})
	athleteService := service.NewAthleteService(athleteRepo, deps.Store, validate)
	userService := service.NewUserService(userRepo, deps.Store, validate)

	// Initialize auth
	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}, userRepo, validate)
	if err != nil {
		return nil, err
	}
	loginLimiter := auth.NewLoginLimiter(auth.LimiterConfig{}, deps.Mailer)
	authHandler := auth.NewAuthHandler(authService, loginLimiter)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService, membershipService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	athleteHandler := handlers.NewAthleteHandler(athleteService)
	userHandler := handlers.NewUserHandler(userService, quotaService)

	uploadLimiter := middleware.NewUploadLimiter(middleware.DefaultUploadsPerMinute, nil)
	imageUpload := func(field string, required bool) gin.HandlerFunc {
		return middleware.ImageUpload(middleware.UploadOptions{
			Field:    field,
			Required: required,
			MaxBytes: cfg.MaxPhotoBytes,
			Limiter:  uploadLimiter,
		})
	}

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	users := router.Group("/api/auth/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", loginLimiter.Middleware(), authHandler.Login)
		users.GET("/current", authMiddleware.RequireAuth(), authHandler.Current)
		users.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
		users.PUT("/updateprofile", authMiddleware.RequireAuth(), imageUpload(fieldAvatar, false), userHandler.UpdateProfile)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/users/storage", userHandler.GetStorage)

		athletes := v1.Group("/athletes")
		{
			athletes.POST("", imageUpload(fieldAthleteAvatar, false), athleteHandler.CreateAthlete)
			athletes.GET("", athleteHandler.ListAthletes)
			athletes.GET("/:id", athleteHandler.GetAthlete)
		}

		teams := v1.Group("/teams")
		{
			teams.POST("", imageUpload(fieldTeamLogo, false), teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", imageUpload(fieldTeamLogo, false), teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.PATCH("/:id/athletes/add", teamHandler.AddAthletes)
			teams.PATCH("/:id/athletes/remove", teamHandler.RemoveAthletes)

			teams.GET("/:id/gallery", galleryHandler.ListPhotos)
			teams.POST("/:id/gallery", imageUpload(fieldPhoto, true), galleryHandler.UploadPhoto)
			teams.DELETE("/:id/gallery/:photoId", galleryHandler.DeletePhoto)
		}
	}

	return router, nil
}
