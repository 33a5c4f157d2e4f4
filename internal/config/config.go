// ABOUTME: Configuration loader for the CLI
// ABOUTME: Loads settings from .env and environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is the backend address used when nothing is configured
const DefaultAPIURL = "http://localhost:8000/api"

// Config holds all runtime settings
type Config struct {
	APIURL       string
	ConfigDir    string // credential store, prefs and debug log live here
	PollInterval int    // seconds between badge polls
	Debug        bool   // enable the TUI debug log
}

// Load reads configuration from a .env file (if present) and the
// environment. defaultConfigDir is used when BUILDBUDDY_CONFIG_DIR is unset.
func Load(defaultConfigDir string) (*Config, error) {
	// A missing .env is the normal case
	godotenv.Load()

	cfg := &Config{
		APIURL:       getEnv("BUILDBUDDY_API_URL", DefaultAPIURL),
		ConfigDir:    getEnv("BUILDBUDDY_CONFIG_DIR", defaultConfigDir),
		PollInterval: getEnvInt("BUILDBUDDY_POLL_INTERVAL", 30),
		Debug:        getEnvBool("BUILDBUDDY_DEBUG", false),
	}

	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("BUILDBUDDY_POLL_INTERVAL must be positive, got %d", cfg.PollInterval)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
