package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig(t *testing.T) {
	t.Setenv("TASKBOARD_SERVER_PORT", "4100")
	t.Setenv("TASKBOARD_DATABASE_URL", "")

	t.Run("environment without a file", func(t *testing.T) {
		cfg, err := loadAppConfig("")
		require.NoError(t, err)
		assert.Equal(t, 4100, cfg.Server.Port)
		assert.False(t, cfg.Database.Durable())
	})

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "taskboard.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  log_level: warn\n"), 0o600))

		cfg, err := loadAppConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Server.LogLevel)
		assert.Equal(t, 4100, cfg.Server.Port, "environment still wins over defaults")
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := loadAppConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})
}
