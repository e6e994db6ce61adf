package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileValuesAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
  legacy_status_codes: false
database:
  driver: sqlite
  database: ":memory:"
queue:
  concurrency: 2
`)

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Server.LegacyStatusCodes)
	assert.Equal(t, "America/Sao_Paulo", cfg.Server.Timezone)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Database)
	assert.Equal(t, 2, cfg.Queue.Concurrency)
	assert.Equal(t, 5, cfg.Queue.MaxAttempts)
	assert.Equal(t, "gympoint:queue", cfg.Queue.Prefix)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 8080\n")
	t.Setenv("GYMPOINT_SERVER_PORT", "9090")
	t.Setenv("GYMPOINT_REDIS_HOST", "cache")

	cfg, err := Load("release", path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
