// Package config provides client configuration from environment variables,
// with optional .env autoload.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the production origin; debug and release builds point at
// the same place.
const DefaultBaseURL = "https://airmateswebsite2026.vercel.app"

// Config holds all client configuration.
type Config struct {
	BaseURL      string
	ConfigDir    string  // credential storage location
	RequestRate  float64 // requests per second; 0 = uncapped
	RequestBurst int
	Debug        bool // verbose, human-readable logging
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:      getEnv("AIRMATES_BASE_URL", DefaultBaseURL),
		ConfigDir:    getEnv("AIRMATES_CONFIG_DIR", defaultConfigDir()),
		RequestRate:  getEnvFloat("AIRMATES_REQUEST_RATE", 0),
		RequestBurst: getEnvInt("AIRMATES_REQUEST_BURST", 1),
		Debug:        getEnvBool("AIRMATES_DEBUG", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("AIRMATES_BASE_URL must be an absolute URL, got %q", c.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("AIRMATES_BASE_URL scheme must be http or https, got %q", u.Scheme)
	}
	if c.ConfigDir == "" {
		return fmt.Errorf("config dir is empty")
	}
	if c.RequestRate < 0 {
		return fmt.Errorf("AIRMATES_REQUEST_RATE must be >= 0")
	}
	return nil
}

// defaultConfigDir follows XDG, falling back to ~/.config/airmates.
func defaultConfigDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "airmates")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "airmates")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
