// Package config provides database configuration management.
package config

import (
	"fmt"
	"strings"

	appConfig "squadhub/internal/config"
	"squadhub/pkg/retry"
)

// Config holds database connection configuration.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// BuildDSN constructs PostgreSQL DSN string from configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Host:     appConfig.GetEnv("DB_HOST", "localhost"),
		User:     appConfig.GetEnv("DB_USER", "postgres"),
		Password: appConfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:   appConfig.GetEnv("DB_NAME", "squadhub"),
		Port:     appConfig.GetEnv("DB_PORT", "5432"),
		SSLMode:  appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone: appConfig.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// SanitizeError removes sensitive information (password) from error messages.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	errMsg := err.Error()
	errMsg = strings.ReplaceAll(errMsg, cfg.Password, "***")
	safeDSN := fmt.Sprintf("host=%s user=%s password=*** dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
	errMsg = strings.ReplaceAll(errMsg, BuildDSN(cfg), safeDSN)
	return fmt.Errorf("failed to connect to database: %s", errMsg)
}

// LoadRetryConfigFromEnv loads connection retry configuration from environment variables.
func LoadRetryConfigFromEnv() retry.Config {
	cfg := retry.PostgresConfig()
	cfg.MaxAttempts = appConfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = appConfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = appConfig.GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	return cfg
}
