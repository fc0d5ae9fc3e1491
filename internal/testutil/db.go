package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/obra/internal/database"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory sqlite database with the full schema.
// The pool is capped at one connection so every query sees the same
// in-memory database. The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open(database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.ApplySchema(context.Background(), db, SQLiteDialect(t)); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// SQLiteDialect returns the sqlite dialect or fails the test
func SQLiteDialect(t *testing.T) database.Dialect {
	t.Helper()
	dialect, err := database.DialectFor(database.DriverSQLite)
	if err != nil {
		t.Fatalf("Failed to get sqlite dialect: %v", err)
	}
	return dialect
}

// CreateTestProject inserts a project row directly and returns its ID
func CreateTestProject(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	res, err := db.ExecContext(context.Background(),
		`INSERT INTO project (project_name, estimated_hours, actual_hours, difficulty, notes) VALUES (?, '1.00', '0', 2, NULL)`,
		name)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return lastID(t, res)
}

// CreateTestMaterial inserts a material row for projectID and returns its ID
func CreateTestMaterial(t *testing.T, db *sql.DB, projectID int, name string) int {
	t.Helper()
	res, err := db.ExecContext(context.Background(),
		`INSERT INTO material (project_id, material_name, num_required, cost) VALUES (?, ?, 1, '1.00')`,
		projectID, name)
	if err != nil {
		t.Fatalf("Failed to create test material: %v", err)
	}
	return lastID(t, res)
}

// CreateTestStep inserts a step row for projectID and returns its ID
func CreateTestStep(t *testing.T, db *sql.DB, projectID int, text string, order int) int {
	t.Helper()
	res, err := db.ExecContext(context.Background(),
		`INSERT INTO step (project_id, step_text, step_order) VALUES (?, ?, ?)`,
		projectID, text, order)
	if err != nil {
		t.Fatalf("Failed to create test step: %v", err)
	}
	return lastID(t, res)
}

// CreateTestCategory inserts a category and links it to every given project
func CreateTestCategory(t *testing.T, db *sql.DB, name string, projectIDs ...int) int {
	t.Helper()
	ctx := context.Background()
	res, err := db.ExecContext(ctx, `INSERT INTO category (category_name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	id := lastID(t, res)
	for _, projectID := range projectIDs {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO project_category (project_id, category_id) VALUES (?, ?)`, projectID, id); err != nil {
			t.Fatalf("Failed to link category %d to project %d: %v", id, projectID, err)
		}
	}
	return id
}

func lastID(t *testing.T, res sql.Result) int {
	t.Helper()
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get inserted ID: %v", err)
	}
	return int(id)
}
