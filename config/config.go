package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the deployed generation endpoint.
	DefaultBaseURL = "https://us-central1-recipe-ai-451017.cloudfunctions.net/function-1"

	// DefaultRequestTimeout bounds every generation call.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultDBPath is the local store location.
	DefaultDBPath = "roto.db"

	// DefaultDevServerPort is where the development stub listens.
	DefaultDevServerPort = "8080"
)

// Config holds all configuration for the application.
type Config struct {
	// Remote generation endpoint
	APIBaseURL     string
	RequestTimeout time.Duration

	// Local persistence
	DBPath string

	// Development stub server
	DevServerPort string
}

// LoadConfig creates a Config from environment variables, falling back to
// defaults suitable for the current environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		APIBaseURL:     DefaultBaseURL,
		RequestTimeout: DefaultRequestTimeout,
		DBPath:         DefaultDBPath,
		DevServerPort:  DefaultDevServerPort,
	}

	if v := os.Getenv("ROTO_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("ROTO_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ROTO_DEV_PORT"); v != "" {
		cfg.DevServerPort = v
	}
	if v := os.Getenv("ROTO_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ROTO_TIMEOUT_SECONDS %q: %w", v, err)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}

	// Tests get an isolated in-memory store unless one was set explicitly.
	if IsTest() && os.Getenv("ROTO_DB_PATH") == "" {
		cfg.DBPath = ":memory:"
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
