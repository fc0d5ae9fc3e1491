package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		driver  string
		want    string
		wantErr bool
	}{
		{driver: DriverSQLite, want: "sqlite"},
		{driver: DriverPgx, want: "pgx"},
		{driver: DriverPostgres, want: "postgres"},
		{driver: "mysql", wantErr: true},
		{driver: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := DialectFor(tt.driver)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}
}

func TestRebind(t *testing.T) {
	t.Parallel()

	pg := postgresDialect{driver: DriverPostgres}
	assert.Equal(t,
		"UPDATE project SET project_name = $1, notes = $2 WHERE project_id = $3",
		pg.Rebind("UPDATE project SET project_name = ?, notes = ? WHERE project_id = ?"))
	assert.Equal(t, "SELECT 1", pg.Rebind("SELECT 1"))

	lite := sqliteDialect{}
	assert.Equal(t, "SELECT ? FROM project", lite.Rebind("SELECT ? FROM project"))
}

func TestSchemaFilesExist(t *testing.T) {
	t.Parallel()

	for _, driver := range []string{DriverSQLite, DriverPgx, DriverPostgres} {
		d, err := DialectFor(driver)
		require.NoError(t, err)
		ddl, err := Schema(d)
		require.NoError(t, err)
		for _, table := range []string{"project", "category", "material", "step", "project_category"} {
			assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+table+" (", "%s schema missing %s", driver, table)
		}
	}
}

func TestApplySchemaIsIdempotent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	require.NoError(t, ApplySchema(context.Background(), db, sqliteDialect{}))
	assert.Equal(t, 0, countRows(t, db, "project"))
}

func TestSplitStatements(t *testing.T) {
	t.Parallel()

	stmts := splitStatements("CREATE TABLE a (x INT);\n\n  CREATE TABLE b (y INT);\n")
	assert.Equal(t, []string{"CREATE TABLE a (x INT)", "CREATE TABLE b (y INT)"}, stmts)
}
