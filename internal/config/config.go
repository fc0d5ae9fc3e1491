package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
// Precedence, lowest first: defaults, config.yaml, .env, environment.
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Log         LogConfig      `yaml:"log"`
	Metrics     MetricsConfig  `yaml:"metrics"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig selects the store
type DatabaseConfig struct {
	// sqlite, pgx or postgres
	Driver string `yaml:"driver" env:"OBRA_DB_DRIVER"`
	// Connection string for the postgres drivers
	DSN string `yaml:"dsn,omitempty" env:"OBRA_DB_DSN"`
	// Database file for sqlite
	Path string `yaml:"path,omitempty" env:"OBRA_DB_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"OBRA_LOG_LEVEL"`
}

// MetricsConfig controls the prometheus textfile written after each command
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty" env:"OBRA_METRICS_TEXTFILE"`
}

var validDrivers = []string{"sqlite", "pgx", "postgres"}

var validLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   defaultDBPath(),
		},
		Log:         LogConfig{Level: "info"},
		ColorScheme: DefaultColorScheme(),
	}
}

// Load loads config from the user's config directory, then applies .env
// and environment overrides. A missing config file is not an error.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		configPath = ""
	}
	return load(configPath, ".env")
}

func load(configPath, dotenvPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
			}
		}
	}

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no command could run with
func (c *Config) Validate() error {
	if !contains(validDrivers, c.Database.Driver) {
		return fmt.Errorf("unknown database driver %q (must be: %s)", c.Database.Driver, strings.Join(validDrivers, ", "))
	}
	if c.Database.Driver != "sqlite" && c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required for driver %q", c.Database.Driver)
	}
	if !contains(validLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("unknown log level %q (must be: %s)", c.Log.Level, strings.Join(validLevels, ", "))
	}
	return nil
}

// DataSource returns the string handed to sql.Open for the configured driver
func (c DatabaseConfig) DataSource() string {
	if c.Driver == "sqlite" {
		return c.Path
	}
	return c.DSN
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.saveTo(configPath)
}

func (c *Config) saveTo(configPath string) error {
	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "obra", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "obra", "config.yaml"), nil
}

// defaultDBPath puts the database under ~/.obra, or the working directory
// when there is no home directory
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Warn("no home directory, using working directory for database", "error", err)
		return filepath.Join(".obra", "projects.db")
	}
	return filepath.Join(home, ".obra", "projects.db")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = defaultDBPath()
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.ColorScheme.ApplyDefaults()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
