package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.GoogleClientID == "" {
		return fmt.Errorf("auth.google_client_id is required")
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be positive")
	}
	if c.Auth.AccessTokenTTL >= c.Auth.RefreshTokenTTL {
		return fmt.Errorf("auth.access_token_ttl (%s) must be shorter than auth.refresh_token_ttl (%s)",
			c.Auth.AccessTokenTTL, c.Auth.RefreshTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if err := c.CORS.validate(); err != nil {
		return fmt.Errorf("cors: %w", err)
	}

	if err := c.Quota.validate(); err != nil {
		return fmt.Errorf("quota: %w", err)
	}

	return nil
}

// validate rejects a wildcard origin combined with credentials, which would
// let any site make credentialed requests.
func (c *CORSConfig) validate() error {
	if !c.AllowCredentials {
		return nil
	}
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if strings.TrimSpace(origin) == "*" {
			return fmt.Errorf("allowed_origins must list explicit origins when allow_credentials is set")
		}
	}
	return nil
}

func (q *QuotaConfig) validate() error {
	if q.MaxHabits <= 0 {
		return fmt.Errorf("max_habits must be > 0 (got %d)", q.MaxHabits)
	}
	if q.MaxCategories <= 0 {
		return fmt.Errorf("max_categories must be > 0 (got %d)", q.MaxCategories)
	}
	return nil
}
