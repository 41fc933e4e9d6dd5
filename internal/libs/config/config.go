// Package config provides application configuration management from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	APIPort        string
	APIHost        string
	LogLevel       string
	ProgressDSN    string
	ProgressSlot   string
	DefaultSection string
	SearchDebounce time.Duration
	SearchRPS      float64
	SnippetLength  int
}

// Load reads configuration from environment variables. Variables in the
// given dotenv files (default ".env") fill in anything not already set; a
// missing file is not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	cfg := &Config{
		APIPort:        getEnv("API_PORT", "8080"),
		APIHost:        getEnv("API_HOST", "0.0.0.0"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ProgressDSN:    getEnv("PROGRESS_DSN", "file://./data"),
		ProgressSlot:   getEnv("PROGRESS_SLOT", "checklistProgress"),
		DefaultSection: getEnv("DEFAULT_SECTION", "introduction"),
	}

	var err error
	if cfg.SearchDebounce, err = time.ParseDuration(getEnv("SEARCH_DEBOUNCE", "300ms")); err != nil {
		return nil, fmt.Errorf("invalid SEARCH_DEBOUNCE: %w", err)
	}
	if cfg.SearchRPS, err = strconv.ParseFloat(getEnv("SEARCH_RPS", "20"), 64); err != nil {
		return nil, fmt.Errorf("invalid SEARCH_RPS: %w", err)
	}
	if cfg.SnippetLength, err = strconv.Atoi(getEnv("SNIPPET_LENGTH", "150")); err != nil {
		return nil, fmt.Errorf("invalid SNIPPET_LENGTH: %w", err)
	}

	if cfg.SearchDebounce < 0 {
		return nil, fmt.Errorf("SEARCH_DEBOUNCE must not be negative")
	}
	if cfg.SearchRPS <= 0 {
		return nil, fmt.Errorf("SEARCH_RPS must be positive")
	}
	if cfg.SnippetLength <= 0 {
		return nil, fmt.Errorf("SNIPPET_LENGTH must be positive")
	}

	return cfg, nil
}

// Addr returns the host:port the API listens on
func (c *Config) Addr() string {
	return c.APIHost + ":" + c.APIPort
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
