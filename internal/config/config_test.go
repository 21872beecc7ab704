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

	assert.Equal(t, "http://localhost:8080/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 30, cfg.HTTPTimeoutSeconds)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.StoragePath)

	assert.Equal(t, 5, cfg.SuggestionLimit)
	assert.Equal(t, 3, cfg.SuggestionRefillThreshold)
	assert.Equal(t, 500, cfg.SuggestionRefillDelayMS)
	assert.Equal(t, 20, cfg.SuggestionProbeMaxID)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.wandersphere.example/api/v1")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("SUGGESTION_REFILL_DELAY_MS", "250")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.wandersphere.example/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, 250*time.Millisecond, cfg.SuggestionRefillDelay())
}
