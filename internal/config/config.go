// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables; command-line flags may
// override them afterwards.
type Config struct {
	Env string // development, production

	// Table span
	Year         int // Gregorian year to tabulate
	WeeksBefore  int // extra weeks before ISO week 1
	WeeksAfter   int // extra weeks after the year
	NewMoonFudge int // extra lunations searched past each end of the grid

	// Week cache
	CacheBackend string // file, sqlite, none
	CacheDir     string // directory for the file backend
	DatabasePath string // SQLite file for the sqlite backend

	// Output
	OutputDir string // where .tex and .svg files are written
	ThemePath string // optional YAML theme for SVG output

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Cache backends
const (
	CacheFile   = "file"
	CacheSQLite = "sqlite"
	CacheNone   = "none"
)

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	// Ignore error if .env is not found
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Env = getEnv("ENV", EnvDevelopment)

	cfg.Year = getEnvInt("CANDYBAR_YEAR", time.Now().Year())
	cfg.WeeksBefore = getEnvInt("WEEKS_BEFORE", 1)
	cfg.WeeksAfter = getEnvInt("WEEKS_AFTER", 0)
	cfg.NewMoonFudge = getEnvInt("NEW_MOON_FUDGE", 3)

	cfg.CacheBackend = getEnv("CACHE_BACKEND", CacheFile)
	cfg.CacheDir = getEnv("CACHE_DIR", "./cache")
	cfg.DatabasePath = getEnv("DATABASE_PATH", "./data/candybar.db")

	cfg.OutputDir = getEnv("OUTPUT_DIR", ".")
	cfg.ThemePath = getEnv("THEME_PATH", "")

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	var errs []error

	switch c.Env {
	case EnvDevelopment, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, production; got %q", c.Env))
	}

	if c.Year < 1 || c.Year > 9999 {
		errs = append(errs, fmt.Errorf("CANDYBAR_YEAR must be between 1 and 9999, got %d", c.Year))
	}
	if c.WeeksBefore < 0 || c.WeeksBefore > 52 {
		errs = append(errs, fmt.Errorf("WEEKS_BEFORE must be between 0 and 52, got %d", c.WeeksBefore))
	}
	if c.WeeksAfter < 0 || c.WeeksAfter > 52 {
		errs = append(errs, fmt.Errorf("WEEKS_AFTER must be between 0 and 52, got %d", c.WeeksAfter))
	}
	if c.NewMoonFudge < 0 {
		errs = append(errs, fmt.Errorf("NEW_MOON_FUDGE must not be negative, got %d", c.NewMoonFudge))
	}

	switch c.CacheBackend {
	case CacheFile:
		if c.CacheDir == "" {
			errs = append(errs, errors.New("CACHE_DIR is required for the file cache"))
		}
	case CacheSQLite:
		if c.DatabasePath == "" {
			errs = append(errs, errors.New("DATABASE_PATH is required for the sqlite cache"))
		}
	case CacheNone:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("CACHE_BACKEND must be one of: file, sqlite, none; got %q", c.CacheBackend))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
