// Package config loads service settings from environment variables and
// optional YAML profile overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	LogLevel  string
	LogFormat string

	// CacheSize bounds the in-memory classification cache.
	CacheSize int

	// ProfileOverrides is an optional path to a YAML file adjusting the
	// built-in environment profile catalog.
	ProfileOverrides string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	cacheSize, err := parseCacheSize()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		LogFormat:        envOrDefault("LOG_FORMAT", "json"),
		CacheSize:        cacheSize,
		ProfileOverrides: os.Getenv("PROFILE_OVERRIDES"),
	}

	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (want json or text)", cfg.LogFormat)
	}

	return cfg, nil
}

func parseCacheSize() (int, error) {
	s := os.Getenv("CACHE_SIZE")
	if s == "" {
		return 1000, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid CACHE_SIZE %q", s)
	}
	return n, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
