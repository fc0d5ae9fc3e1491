package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the override variables for the duration of a test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"OBRA_DB_DRIVER", "OBRA_DB_DSN", "OBRA_DB_PATH", "OBRA_LOG_LEVEL", "OBRA_METRICS_TEXTFILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg, err := load(filepath.Join(tempDir, "obra", "config.yaml"), filepath.Join(tempDir, ".env"))
	if err != nil {
		t.Fatalf("load() without config file failed: %v", err)
	}

	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %s, want sqlite (default)", cfg.Database.Driver)
	}
	if filepath.Base(cfg.Database.Path) != "projects.db" {
		t.Errorf("Path = %s, want .../projects.db", cfg.Database.Path)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log level = %s, want info", cfg.Log.Level)
	}
	if cfg.ColorScheme.Accent != "#874BFD" {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "obra", "config.yaml")

	writeFile(t, configPath, `database:
  driver: sqlite
  path: /tmp/obra-test.db
log:
  level: debug
theme:
  accent: "#FF00FF"
`)

	cfg, err := load(configPath, filepath.Join(tempDir, ".env"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/obra-test.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "#FF00FF", cfg.ColorScheme.Accent)
	// unset colors fall back to defaults
	assert.Equal(t, "#D75FD7", cfg.ColorScheme.Title)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	writeFile(t, configPath, "database: [not a map")

	_, err := load(configPath, filepath.Join(tempDir, ".env"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	writeFile(t, configPath, `database:
  driver: sqlite
  path: /from/file.db
`)

	t.Setenv("OBRA_DB_PATH", "/from/env.db")
	t.Setenv("OBRA_METRICS_TEXTFILE", "/tmp/obra.prom")

	cfg, err := load(configPath, filepath.Join(tempDir, ".env"))
	require.NoError(t, err)

	assert.Equal(t, "/from/env.db", cfg.Database.Path)
	assert.Equal(t, "/tmp/obra.prom", cfg.Metrics.Textfile)
}

func TestLoadConfigDotenv(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	dotenv := filepath.Join(tempDir, ".env")
	writeFile(t, dotenv, "OBRA_DB_DRIVER=pgx\nOBRA_DB_DSN=postgres://localhost/obra\n")
	// godotenv sets real process variables; restore them afterwards
	t.Cleanup(func() {
		os.Unsetenv("OBRA_DB_DRIVER")
		os.Unsetenv("OBRA_DB_DSN")
	})

	cfg, err := load("", dotenv)
	require.NoError(t, err)

	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/obra", cfg.Database.DataSource())
}

func TestLoadConfigDotenvDoesNotOverrideEnv(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	dotenv := filepath.Join(tempDir, ".env")
	writeFile(t, dotenv, "OBRA_LOG_LEVEL=error\n")

	t.Setenv("OBRA_LOG_LEVEL", "warn")

	cfg, err := load("", dotenv)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = "postgres" }, true},
		{"pgx with dsn", func(c *Config) {
			c.Database.Driver = "pgx"
			c.Database.DSN = "postgres://localhost/obra"
		}, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"uppercase log level", func(c *Config) { c.Log.Level = "DEBUG" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDataSource(t *testing.T) {
	sqlite := DatabaseConfig{Driver: "sqlite", Path: "/tmp/a.db", DSN: "ignored"}
	assert.Equal(t, "/tmp/a.db", sqlite.DataSource())

	pg := DatabaseConfig{Driver: "postgres", Path: "ignored", DSN: "postgres://x"}
	assert.Equal(t, "postgres://x", pg.DataSource())
}

func TestSaveConfig(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := Default()
	cfg.Database.Path = "/tmp/saved.db"
	cfg.Log.Level = "warn"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "obra", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := load(configPath, filepath.Join(tempDir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/saved.db", loaded.Database.Path)
	assert.Equal(t, "warn", loaded.Log.Level)
}
