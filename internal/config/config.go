package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port           string
	AllowedOrigins []string
	LogLevel       string

	// Upstream chat platform API
	LH3BaseURL  string
	LH3Username string
	LH3Password string
	LH3Timeout  time.Duration

	// Optional JSON file overriding the bundled institution directory
	DirectoryFile string

	// Wait-time threshold for the answered-within-SL share, seconds
	SLThresholdSecs int

	// Service overview snapshot refresh
	RefreshInterval    time.Duration
	OverviewWindowDays int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LH3BaseURL:     getEnv("LH3_BASE_URL", "https://libraryh3lp.com/api/v2"),
		LH3Username:    getEnv("LH3_USERNAME", ""),
		LH3Password:    getEnv("LH3_PASSWORD", ""),
		DirectoryFile:  getEnv("DIRECTORY_FILE", ""),
	}

	lh3Timeout, err := strconv.Atoi(getEnv("LH3_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid LH3_TIMEOUT: %w", err)
	}
	config.LH3Timeout = time.Duration(lh3Timeout) * time.Second

	slThreshold, err := strconv.Atoi(getEnv("SL_THRESHOLD_SECS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid SL_THRESHOLD_SECS: %w", err)
	}
	config.SLThresholdSecs = slThreshold

	refreshMins, err := strconv.Atoi(getEnv("REFRESH_INTERVAL_MINUTES", "360"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL_MINUTES: %w", err)
	}
	config.RefreshInterval = time.Duration(refreshMins) * time.Minute

	windowDays, err := strconv.Atoi(getEnv("OVERVIEW_WINDOW_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid OVERVIEW_WINDOW_DAYS: %w", err)
	}
	config.OverviewWindowDays = windowDays

	// Trim spaces from allowed origins
	for i, origin := range config.AllowedOrigins {
		config.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return config, nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
