package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadFromEnv()

		assert.Equal(t, ":8080", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "release", cfg.GinMode)
		assert.True(t, cfg.AutoMigrate)
		require.NoError(t, cfg.Validate())
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", ":9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("GIN_MODE", "test")
		t.Setenv("AUTO_MIGRATE", "false")

		cfg := LoadFromEnv()

		assert.Equal(t, ":9090", cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, "test", cfg.GinMode)
		assert.False(t, cfg.AutoMigrate)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := LoadFromEnv()
		return cfg
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := valid()
		cfg.GinMode = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := valid()
		cfg.Logger.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid server timeout", func(t *testing.T) {
		cfg := valid()
		cfg.Server.ReadTimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty jwt secret", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("bcrypt cost out of range", func(t *testing.T) {
		cfg := valid()
		cfg.Auth.BcryptCost = 99
		assert.Error(t, cfg.Validate())
	})
}

func TestServerConfig_GetAddress(t *testing.T) {
	t.Run("port only", func(t *testing.T) {
		cfg := ServerConfig{Port: ":8080"}
		assert.Equal(t, ":8080", cfg.GetAddress())
	})

	t.Run("host and port", func(t *testing.T) {
		cfg := ServerConfig{Host: "127.0.0.1", Port: ":8080"}
		assert.Equal(t, "127.0.0.1:8080", cfg.GetAddress())
	})
}

func TestAuthConfig_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, LoadAuthConfigFromEnv().Validate())
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := LoadAuthConfigFromEnv()
		cfg.AccessTokenTTL = -time.Minute
		assert.Error(t, cfg.Validate())
	})
}
