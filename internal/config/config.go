package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Object storage (S3-compatible CDN)
	S3Endpoint        string `mapstructure:"S3_ENDPOINT"`
	S3Region          string `mapstructure:"S3_REGION"`
	S3AccessKeyID     string `mapstructure:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `mapstructure:"S3_SECRET_ACCESS_KEY"`
	S3Bucket          string `mapstructure:"S3_BUCKET"`
	CDNPublicBaseURL  string `mapstructure:"CDN_PUBLIC_BASE_URL"`

	// SMTP configuration for security alerts
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	PasswordResetURL string `mapstructure:"PASSWORD_RESET_URL"`

	// Limits
	StorageLimitBytes int64 `mapstructure:"STORAGE_LIMIT_BYTES"`
	MaxPhotoBytes     int64 `mapstructure:"MAX_PHOTO_BYTES"`
	GalleryPageSize   int   `mapstructure:"GALLERY_PAGE_SIZE"`
	TeamPageSize      int   `mapstructure:"TEAM_PAGE_SIZE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "coaching_roster")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("TOKEN_TTL", 8*time.Hour)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	// Object storage defaults
	viper.SetDefault("S3_ENDPOINT", "")
	viper.SetDefault("S3_REGION", "auto")
	viper.SetDefault("S3_ACCESS_KEY_ID", "")
	viper.SetDefault("S3_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_BUCKET", "coaching-roster")
	viper.SetDefault("CDN_PUBLIC_BASE_URL", "")

	// SMTP defaults
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("PASSWORD_RESET_URL", "http://localhost:5173/forgot-password")

	// Limits
	viper.SetDefault("STORAGE_LIMIT_BYTES", 500*1024*1024)
	viper.SetDefault("MAX_PHOTO_BYTES", 5*1024*1024)
	viper.SetDefault("GALLERY_PAGE_SIZE", 30)
	viper.SetDefault("TEAM_PAGE_SIZE", 5)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.S3Endpoint == "" || config.S3AccessKeyID == "" || config.S3SecretAccessKey == "" {
			return fmt.Errorf("S3_ENDPOINT, S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.StorageLimitBytes <= 0 {
		return fmt.Errorf("STORAGE_LIMIT_BYTES must be positive")
	}
	if config.MaxPhotoBytes <= 0 {
		return fmt.Errorf("MAX_PHOTO_BYTES must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
