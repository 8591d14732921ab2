package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	appConfig "squadhub/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		log, err := New()
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("console format from env", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "console")
		t.Setenv("LOG_LEVEL", "debug")

		log, err := New()
		require.NoError(t, err)
		require.NotNil(t, log)
	})
}

func TestNewWithConfig(t *testing.T) {
	t.Run("production json logger", func(t *testing.T) {
		log, err := NewWithConfig(appConfig.LoggerConfig{Level: "info", Format: "json", Output: "stdout"})
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		log, err := NewWithConfig(appConfig.LoggerConfig{Level: "chatty", Format: "json", Output: "stdout"})
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("file output falls back to stdout", func(t *testing.T) {
		log, err := NewWithConfig(appConfig.LoggerConfig{Level: "warn", Format: "json", Output: "/var/log/app.log"})
		require.NoError(t, err)
		require.NotNil(t, log)
	})
}
