package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "POCKETBUDDY_"
	// ConfigFileEnv names an optional TOML file applied before the environment.
	ConfigFileEnv = EnvPrefix + "CONFIG_FILE"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	StoreBackend string        `toml:"store_backend" env:"STORE_BACKEND"`
	DataDir      string        `toml:"data_dir"      env:"DATA_DIR"`
	DatabaseFile string        `toml:"database_file" env:"DATABASE_FILE"`
	BusyTimeout  time.Duration `toml:"busy_timeout"  env:"BUSY_TIMEOUT"`
	BusyRetries  int           `toml:"busy_retries"  env:"BUSY_RETRIES"`

	// Logging
	LogLevel  string `toml:"log_level"  env:"LOG_LEVEL"`
	LogFormat string `toml:"log_format" env:"LOG_FORMAT"`

	// Calendar used for daily limits and buckets
	Timezone string `toml:"timezone" env:"TIMEZONE"`

	// Metrics
	MetricsEnabled bool `toml:"metrics_enabled" env:"METRICS_ENABLED"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		StoreBackend:   BackendSQLite,
		DataDir:        defaultDataDir(),
		DatabaseFile:   "wallet.db",
		BusyTimeout:    5 * time.Second,
		BusyRetries:    3,
		LogLevel:       "info",
		LogFormat:      "json",
		Timezone:       "Local",
		MetricsEnabled: true,
	}
}

// Load builds the configuration from defaults, then the optional TOML file,
// then environment variables (including a .env file in the working directory).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := DefaultConfig()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.StoreBackend {
	case BackendSQLite, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("store backend must be %q or %q, got %q", BackendSQLite, BackendMemory, c.StoreBackend))
	}

	if c.StoreBackend == BackendSQLite && (c.DataDir == "" || c.DatabaseFile == "") {
		errs = append(errs, errors.New("sqlite backend needs a data dir and database file"))
	}

	if c.BusyTimeout < 0 {
		errs = append(errs, fmt.Errorf("busy timeout must not be negative, got %s", c.BusyTimeout))
	}

	if c.BusyRetries < 0 {
		errs = append(errs, fmt.Errorf("busy retries must not be negative, got %d", c.BusyRetries))
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log format must be json or console, got %q", c.LogFormat))
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// DatabasePath is the full path of the SQLite file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "pocketbuddy")
	}
	return ".pocketbuddy"
}
