package config

import (
	"fmt"
	"time"
)

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	// JWTSecret signs access tokens. Must be set outside of local development.
	JWTSecret string
	// AccessTokenTTL is the lifetime of issued access tokens.
	AccessTokenTTL time.Duration
	// LoginCodeTTL is the lifetime of one-time login codes used by the
	// deferred-link sign-in flow.
	LoginCodeTTL time.Duration
	// BcryptCost is the bcrypt hashing cost for account passwords.
	BcryptCost int
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:      GetEnv("AUTH_JWT_SECRET", "dev-secret"),
		AccessTokenTTL: GetEnvDuration("AUTH_ACCESS_TOKEN_TTL", 24*time.Hour),
		LoginCodeTTL:   GetEnvDuration("AUTH_LOGIN_CODE_TTL", 10*time.Minute),
		BcryptCost:     GetEnvInt("AUTH_BCRYPT_COST", 10),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET must not be empty")
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("AccessTokenTTL must be greater than 0")
	}
	if c.LoginCodeTTL <= 0 {
		return fmt.Errorf("LoginCodeTTL must be greater than 0")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BcryptCost must be between 4 and 31")
	}
	return nil
}
