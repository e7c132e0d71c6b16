package config

import (
	"fmt"
	"net/url"
	"strconv"
)

// ValidateConfig checks that the configuration is usable before anything
// opens a store or dials the network.
func ValidateConfig(cfg *Config) error {
	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API base URL %q is not a valid absolute URL", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	if cfg.DBPath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if _, err := strconv.Atoi(cfg.DevServerPort); err != nil {
		return fmt.Errorf("dev server port %q is not numeric", cfg.DevServerPort)
	}
	return nil
}
