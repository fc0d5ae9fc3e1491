package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/obra/internal/models"

	_ "modernc.org/sqlite"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

// setupTestDB creates an in-memory database with the full schema.
// One open connection keeps every query on the same in-memory database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err, "failed to create test database")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	require.NoError(t, err, "failed to enable foreign keys")

	require.NoError(t, ApplySchema(context.Background(), db, sqliteDialect{}))
	return db
}

func setupTestDao(t *testing.T) (*ProjectDao, *sql.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewProjectDao(db, sqliteDialect{}), db
}

func newTestProject(name string) *models.Project {
	return &models.Project{
		Name:           name,
		EstimatedHours: decimal.RequireFromString("4.50"),
		ActualHours:    decimal.RequireFromString("5.25"),
		Difficulty:     3,
		Notes:          "notes for " + name,
	}
}

func insertMaterialRow(t *testing.T, db *sql.DB, projectID int, name string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO material (project_id, material_name, num_required, cost) VALUES (?, ?, 1, '2.00')`,
		projectID, name)
	require.NoError(t, err)
}

func insertStepRow(t *testing.T, db *sql.DB, projectID int, text string, order int) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO step (project_id, step_text, step_order) VALUES (?, ?, ?)`,
		projectID, text, order)
	require.NoError(t, err)
}

func insertCategoryRow(t *testing.T, db *sql.DB, projectID int, name string) int {
	t.Helper()
	ctx := context.Background()
	res, err := db.ExecContext(ctx, `INSERT INTO category (category_name) VALUES (?)`, name)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO project_category (project_id, category_id) VALUES (?, ?)`, projectID, id)
	require.NoError(t, err)
	return int(id)
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
