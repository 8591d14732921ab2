package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		User:     "app",
		Password: "secret",
		DBName:   "squadhub",
		Port:     "5432",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	dsn := BuildDSN(cfg)
	assert.Equal(t, "host=db user=app password=secret dbname=squadhub port=5432 sslmode=disable TimeZone=UTC", dsn)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "squadhub_test")

	cfg := LoadConfigFromEnv()
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "squadhub_test", cfg.DBName)
	assert.Equal(t, "5432", cfg.Port)
}

func TestSanitizeError(t *testing.T) {
	cfg := Config{Host: "db", User: "app", Password: "hunter2", DBName: "squadhub", Port: "5432", SSLMode: "disable", TimeZone: "UTC"}

	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, SanitizeError(nil, cfg))
	})

	t.Run("password is masked", func(t *testing.T) {
		err := SanitizeError(errors.New("auth failed for password=hunter2"), cfg)
		assert.NotContains(t, err.Error(), "hunter2")
		assert.Contains(t, err.Error(), "***")
	})
}

func TestLoadRetryConfigFromEnv(t *testing.T) {
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "2")

	cfg := LoadRetryConfigFromEnv()
	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.NotEmpty(t, cfg.RetryableErrors)
}
