package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "football", cfg.Sport)
	assert.Equal(t, "nfl", cfg.League)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoadWithoutPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
sport: basketball
league: nba
timeout: 10s
cache:
  backend: redis
  ttl: 2m
  redis:
    addr: localhost:6379
    db: 3
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "basketball", cfg.Sport)
	assert.Equal(t, "nba", cfg.League)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 3, cfg.Cache.Redis.DB)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sport: hockey\nleague: nhl\n"), 0o644))

	t.Setenv("ESPN_SPORT", "baseball")
	t.Setenv("ESPN_LEAGUE", "mlb")
	t.Setenv("ESPN_CACHE_BACKEND", "disk")
	t.Setenv("ESPN_CACHE_DIR", "/tmp/espn")
	t.Setenv("ESPN_CACHE_TTL_SECONDS", "90")
	t.Setenv("ESPN_TIMEOUT_SECONDS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "baseball", cfg.Sport)
	assert.Equal(t, "mlb", cfg.League)
	assert.Equal(t, "disk", cfg.Cache.Backend)
	assert.Equal(t, "/tmp/espn", cfg.Cache.Dir)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache: [not a map"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}
