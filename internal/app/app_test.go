package app

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/obra/internal/database"
	"github.com/thenoetrevino/obra/internal/models"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) (*sql.DB, database.Dialect) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	dialect, err := database.DialectFor(database.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, database.ApplySchema(context.Background(), db, dialect))

	return db, dialect
}

func TestNew(t *testing.T) {
	db, dialect := setupTestDB(t)

	app := New(db, dialect)
	defer func() { _ = app.Close() }()

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.ProjectService == nil {
		t.Error("Expected ProjectService to be initialized")
	}
	assert.Equal(t, database.DriverSQLite, app.Dialect().Name())
	assert.Same(t, db, app.DB())
}

func TestClose(t *testing.T) {
	db, dialect := setupTestDB(t)

	app := New(db, dialect)

	err := app.Close()
	if err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}

	// the pool is closed with the app
	assert.Error(t, db.PingContext(context.Background()))
}

func TestCloseWritesMetricsTextfile(t *testing.T) {
	db, dialect := setupTestDB(t)
	path := filepath.Join(t.TempDir(), "obra.prom")

	app := New(db, dialect, WithMetricsTextfile(path))

	_, err := app.ProjectService.AddProject(context.Background(), &models.Project{
		Name:           "Bookshelf",
		EstimatedHours: decimal.NewFromInt(4),
		ActualHours:    decimal.Zero,
		Difficulty:     2,
	})
	require.NoError(t, err)
	require.NoError(t, app.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "obra_dao_operations_total"), "textfile:\n%s", data)
}

func TestWithRegistry(t *testing.T) {
	db, dialect := setupTestDB(t)
	reg := prometheus.NewRegistry()

	app := New(db, dialect, WithRegistry(reg))
	assert.Same(t, reg, app.Registry())
	defer func() { _ = app.Close() }()

	_, err := app.ProjectService.FetchAllProjects(context.Background())
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestCloseWritesTextfileFromSuppliedRegistry(t *testing.T) {
	db, dialect := setupTestDB(t)
	path := filepath.Join(t.TempDir(), "obra.prom")
	reg := prometheus.NewRegistry()

	app := New(db, dialect, WithRegistry(reg), WithMetricsTextfile(path))

	_, err := app.ProjectService.FetchAllProjects(context.Background())
	require.NoError(t, err)
	require.NoError(t, app.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `obra_dao_operations_total{op="fetch projects",outcome="committed"} 1`)
}
