// Package config loads client settings from a YAML file with
// environment-variable overrides, for binaries built on the library.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds client construction settings.
type Config struct {
	Sport  string `yaml:"sport"`
	League string `yaml:"league"`

	Timeout time.Duration `yaml:"timeout"`

	Cache struct {
		// Backend selects the storage: "", "memory", "disk" or "redis".
		// Empty disables caching.
		Backend string        `yaml:"backend"`
		TTL     time.Duration `yaml:"ttl"`
		Dir     string        `yaml:"dir"`
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Default returns the settings used when no file or env overrides are
// present.
func Default() Config {
	var cfg Config
	cfg.Sport = "football"
	cfg.League = "nfl"
	cfg.Timeout = 30 * time.Second
	cfg.Cache.Backend = "memory"
	cfg.Cache.TTL = 5 * time.Minute
	return cfg
}

// Load reads the YAML file at path (skipped when path is empty), then
// applies ESPN_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.Sport = getEnv("ESPN_SPORT", cfg.Sport)
	cfg.League = getEnv("ESPN_LEAGUE", cfg.League)
	cfg.Cache.Backend = getEnv("ESPN_CACHE_BACKEND", cfg.Cache.Backend)
	cfg.Cache.Dir = getEnv("ESPN_CACHE_DIR", cfg.Cache.Dir)
	cfg.Cache.Redis.Addr = getEnv("ESPN_REDIS_ADDR", cfg.Cache.Redis.Addr)
	cfg.Cache.Redis.Password = getEnv("ESPN_REDIS_PASSWORD", cfg.Cache.Redis.Password)
	cfg.Cache.Redis.DB = getEnvAsInt("ESPN_REDIS_DB", cfg.Cache.Redis.DB)
	if seconds := getEnvAsInt("ESPN_CACHE_TTL_SECONDS", 0); seconds > 0 {
		cfg.Cache.TTL = time.Duration(seconds) * time.Second
	}
	if seconds := getEnvAsInt("ESPN_TIMEOUT_SECONDS", 0); seconds > 0 {
		cfg.Timeout = time.Duration(seconds) * time.Second
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
