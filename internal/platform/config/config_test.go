package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout())
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout())
	assert.False(t, cfg.Server.DevAuth)
	assert.Equal(t, "X-Api-Key", cfg.Backend.APIKeyHeader)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout())
	assert.Empty(t, cfg.Backend.BaseURL)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "pet-shelter-hub", cfg.Log.App)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_DEV_AUTH", "true")
	t.Setenv("BACKEND_BASE_URL", "https://api.example.org")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Server.DevAuth)
	assert.Equal(t, "https://api.example.org", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_DSN=postgres://u:p@localhost/hub\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DATABASE_DSN") })

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost/hub", cfg.Database.DSN)
}
