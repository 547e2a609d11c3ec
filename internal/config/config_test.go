package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.Year != time.Now().Year() {
		t.Errorf("Year = %d, want the current year", cfg.Year)
	}
	if cfg.WeeksBefore != 1 || cfg.WeeksAfter != 0 {
		t.Errorf("padding = %d/%d, want 1/0", cfg.WeeksBefore, cfg.WeeksAfter)
	}
	if cfg.NewMoonFudge != 3 {
		t.Errorf("NewMoonFudge = %d, want 3", cfg.NewMoonFudge)
	}
	if cfg.CacheBackend != CacheFile {
		t.Errorf("CacheBackend = %q, want %q", cfg.CacheBackend, CacheFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	os.Setenv("ENV", "production")
	os.Setenv("CANDYBAR_YEAR", "2020")
	os.Setenv("WEEKS_BEFORE", "2")
	os.Setenv("WEEKS_AFTER", "3")
	os.Setenv("NEW_MOON_FUDGE", "5")
	os.Setenv("CACHE_BACKEND", "sqlite")
	os.Setenv("DATABASE_PATH", "/data/test.db")
	os.Setenv("OUTPUT_DIR", "/tmp/out")
	os.Setenv("THEME_PATH", "theme.yaml")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.Year != 2020 {
		t.Errorf("Year = %d, want 2020", cfg.Year)
	}
	if cfg.WeeksBefore != 2 || cfg.WeeksAfter != 3 {
		t.Errorf("padding = %d/%d, want 2/3", cfg.WeeksBefore, cfg.WeeksAfter)
	}
	if cfg.NewMoonFudge != 5 {
		t.Errorf("NewMoonFudge = %d, want 5", cfg.NewMoonFudge)
	}
	if cfg.CacheBackend != CacheSQLite {
		t.Errorf("CacheBackend = %q, want %q", cfg.CacheBackend, CacheSQLite)
	}
	if cfg.DatabasePath != "/data/test.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/data/test.db")
	}
	if cfg.OutputDir != "/tmp/out" || cfg.ThemePath != "theme.yaml" {
		t.Errorf("OutputDir/ThemePath = %q/%q", cfg.OutputDir, cfg.ThemePath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv()
	os.Setenv("CACHE_BACKEND", "redis")
	defer clearEnv()

	if _, err := Load(); err == nil {
		t.Error("Load() accepted CACHE_BACKEND=redis")
	}
}

func validConfig() Config {
	return Config{
		Env:          EnvDevelopment,
		Year:         2020,
		WeeksBefore:  1,
		NewMoonFudge: 3,
		CacheBackend: CacheFile,
		CacheDir:     "./cache",
		DatabasePath: "./data/test.db",
		OutputDir:    ".",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid development config", func(c *Config) {}, false},
		{"valid production config", func(c *Config) { c.Env = EnvProduction; c.LogFormat = "json" }, false},
		{"sqlite backend", func(c *Config) { c.CacheBackend = CacheSQLite }, false},
		{"no cache", func(c *Config) { c.CacheBackend = CacheNone; c.CacheDir = "" }, false},
		{"invalid environment", func(c *Config) { c.Env = "staging" }, true},
		{"year too low", func(c *Config) { c.Year = 0 }, true},
		{"year too high", func(c *Config) { c.Year = 10000 }, true},
		{"negative weeks before", func(c *Config) { c.WeeksBefore = -1 }, true},
		{"too many weeks after", func(c *Config) { c.WeeksAfter = 53 }, true},
		{"negative fudge", func(c *Config) { c.NewMoonFudge = -1 }, true},
		{"unknown backend", func(c *Config) { c.CacheBackend = "redis" }, true},
		{"file backend without dir", func(c *Config) { c.CacheDir = "" }, true},
		{"sqlite backend without path", func(c *Config) { c.CacheBackend = CacheSQLite; c.DatabasePath = "" }, true},
		{"invalid log level", func(c *Config) { c.LogLevel = "verbose" }, true},
		{"invalid log format", func(c *Config) { c.LogFormat = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"ENV", "CANDYBAR_YEAR", "WEEKS_BEFORE", "WEEKS_AFTER", "NEW_MOON_FUDGE",
		"CACHE_BACKEND", "CACHE_DIR", "DATABASE_PATH", "OUTPUT_DIR", "THEME_PATH",
		"LOG_LEVEL", "LOG_FORMAT",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
