package auth

import (
	"fmt"
	"time"
)

// DefaultTokenTTL is the lifetime of an issued session token
const DefaultTokenTTL = 8 * time.Hour

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
}

// ValidateConfig validates the authentication configuration and fills defaults
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL < 0 {
		return fmt.Errorf("token TTL must not be negative")
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = DefaultTokenTTL
	}
	if c.Issuer == "" {
		c.Issuer = "coaching-roster-backend"
	}
	return nil
}
