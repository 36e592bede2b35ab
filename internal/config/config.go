// Package config loads process configuration from the environment, with an
// optional .env file for local development. Configuration is resolved once
// at startup and immutable afterward; a missing required value fails fast.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the top-level configuration for the civicalnyc binaries.
type Config struct {
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	NYC311 NYC311Config
	Server ServerConfig
}

// NYC311Config holds upstream API settings.
type NYC311Config struct {
	// APIKey is the NYC API Portal subscription key.
	APIKey string `envconfig:"NYC311_API_KEY" required:"true"`

	// BaseURL overrides the API base URL, for testing against a stub.
	BaseURL string `envconfig:"NYC311_BASE_URL"`

	// Timeout bounds a single calendar request.
	Timeout time.Duration `envconfig:"NYC311_TIMEOUT" default:"60s"`

	// Retries is the caller-side retry budget for transient upstream
	// failures. The library itself never retries.
	Retries uint64 `envconfig:"NYC311_RETRIES" default:"3"`

	// ScrubEventNames strips "(Observed)" and year markers from exception
	// names.
	ScrubEventNames bool `envconfig:"NYC311_SCRUB_EVENT_NAMES" default:"true"`
}

// ServerConfig holds HTTP server settings for cmd/api.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`

	// CacheTTL is how long a fetched calendar is served before refetching.
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	// RateLimit is the per-IP request budget per minute.
	RateLimit int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"60"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present; real environment variables
// win.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
