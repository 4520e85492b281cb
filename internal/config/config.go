package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Output settings
	OutputPath string

	// Feed settings
	FeedsConfigPath string
	RecencyDays     int
	SummaryMaxRunes int

	// HTTP settings
	RequestTimeout time.Duration
	UserAgent      string
	FetchInterval  time.Duration // pause between feed fetches (0 = none)

	// Retry settings (1 attempt = no retries)
	RetryAttempts int
	RetryDelay    time.Duration

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		OutputPath:      "items.json",
		FeedsConfigPath: "configs/feeds.yaml",
		RecencyDays:     14,
		SummaryMaxRunes: 450,
		RequestTimeout:  30 * time.Second,
		UserAgent:       "upscprep-harvester/1.0",
		RetryAttempts:   1,
		RetryDelay:      5 * time.Second,
	}

	cfg.OutputPath = getEnvOrDefault("OUTPUT_PATH", cfg.OutputPath)
	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.RecencyDays = getEnvIntOrDefault("RECENCY_DAYS", cfg.RecencyDays)
	cfg.SummaryMaxRunes = getEnvIntOrDefault("SUMMARY_MAX_RUNES", cfg.SummaryMaxRunes)
	cfg.UserAgent = getEnvOrDefault("USER_AGENT", cfg.UserAgent)
	cfg.RetryAttempts = getEnvIntOrDefault("RETRY_ATTEMPTS", cfg.RetryAttempts)

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RequestTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("RETRY_DELAY_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryDelay = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("FETCH_INTERVAL_MS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FetchInterval = time.Duration(val) * time.Millisecond
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH must not be empty")
	}
	if c.RecencyDays <= 0 {
		return fmt.Errorf("RECENCY_DAYS must be positive, got %d", c.RecencyDays)
	}
	if c.SummaryMaxRunes <= 0 {
		return fmt.Errorf("SUMMARY_MAX_RUNES must be positive, got %d", c.SummaryMaxRunes)
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("RETRY_ATTEMPTS must be at least 1, got %d", c.RetryAttempts)
	}
	return nil
}
