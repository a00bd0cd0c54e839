package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"superviseme/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.DatasetWatch)
	assert.Equal(t, 30, cfg.SessionTTLMinutes)
}

func TestLoadConfig_YAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_address: ":9090"
environment: "production"
dataset_path: "/srv/data/clusters.json"
session_ttl_minutes: 10
allowed_origins:
  - "https://superviseme.example.edu"
`), 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/srv/data/clusters.json", cfg.DatasetPath)
	assert.Equal(t, 10, cfg.SessionTTLMinutes)
	assert.Equal(t, []string{"https://superviseme.example.edu"}, cfg.AllowedOrigins)
}

func TestLoadConfig_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`dataset_path: "/from/yaml.json"`), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATASET_PATH", "/from/env.json")
	t.Setenv("DATASET_WATCH", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/from/env.json", cfg.DatasetPath)
	assert.False(t, cfg.DatasetWatch)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("SESSION_TTL_MINUTES", "0")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`server_address: [`), 0o644))
	t.Setenv("CONFIG_FILE", path)

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Durations(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg.SessionTTL().Minutes(), float64(cfg.SessionTTLMinutes))
	assert.Equal(t, cfg.RateLimitWindow().Seconds(), float64(cfg.RateLimitWindowSeconds))
}
