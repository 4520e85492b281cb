package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "items.json", cfg.OutputPath)
	assert.Equal(t, "configs/feeds.yaml", cfg.FeedsConfigPath)
	assert.Equal(t, 14, cfg.RecencyDays)
	assert.Equal(t, 450, cfg.SummaryMaxRunes)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1, cfg.RetryAttempts)
	assert.Equal(t, time.Duration(0), cfg.FetchInterval)
	assert.False(t, cfg.Debug)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OUTPUT_PATH", "/tmp/out.json")
	t.Setenv("RECENCY_DAYS", "7")
	t.Setenv("RETRY_ATTEMPTS", "3")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "10")
	t.Setenv("FETCH_INTERVAL_MS", "250")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out.json", cfg.OutputPath)
	assert.Equal(t, 7, cfg.RecencyDays)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.FetchInterval)
	assert.True(t, cfg.Debug)
}

func TestValidate(t *testing.T) {
	t.Setenv("RECENCY_DAYS", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRetryAttempts(t *testing.T) {
	t.Setenv("RETRY_ATTEMPTS", "0")
	_, err := Load()
	assert.Error(t, err)
}
