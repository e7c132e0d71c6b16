package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultDevServerPort, cfg.DevServerPort)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ROTO_API_URL", "http://localhost:8080")
	t.Setenv("ROTO_DB_PATH", "/tmp/roto-test.db")
	t.Setenv("ROTO_TIMEOUT_SECONDS", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/roto-test.db", cfg.DBPath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	t.Setenv("ROTO_TIMEOUT_SECONDS", "soon")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigTestEnvUsesMemoryStore(t *testing.T) {
	t.Setenv("ENV", "test")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.DBPath)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
	assert.False(t, IsProduction())

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.True(t, IsTest())
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{
		APIBaseURL:     "https://example.com",
		RequestTimeout: time.Second,
		DBPath:         "roto.db",
		DevServerPort:  "8080",
	}
	assert.NoError(t, ValidateConfig(valid))

	bad := *valid
	bad.APIBaseURL = "not a url"
	assert.Error(t, ValidateConfig(&bad))

	bad = *valid
	bad.RequestTimeout = 0
	assert.Error(t, ValidateConfig(&bad))

	bad = *valid
	bad.DevServerPort = "http"
	assert.Error(t, ValidateConfig(&bad))
}
