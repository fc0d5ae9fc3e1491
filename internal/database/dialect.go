package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Driver names accepted by Open
const (
	DriverSQLite   = "sqlite"   // modernc.org/sqlite
	DriverPgx      = "pgx"      // github.com/jackc/pgx/v5/stdlib
	DriverPostgres = "postgres" // github.com/lib/pq
)

// Dialect hides the differences between the supported stores: placeholder
// syntax, generated key retrieval and the schema file.
type Dialect interface {
	Name() string
	// Rebind rewrites ? placeholders into the store's native form.
	Rebind(query string) string
	// InsertID runs an INSERT on tx and returns the key the store generated
	// for that row. It never looks outside tx, so concurrent inserters on
	// other connections cannot leak their keys into the result.
	InsertID(ctx context.Context, tx *sql.Tx, query, idColumn string, args ...any) (int64, error)
	schemaFile() string
}

// DialectFor returns the dialect for a database/sql driver name
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DriverSQLite:
		return sqliteDialect{}, nil
	case DriverPgx, DriverPostgres:
		return postgresDialect{driver: driver}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return DriverSQLite }

func (sqliteDialect) Rebind(query string) string { return query }

func (sqliteDialect) InsertID(ctx context.Context, tx *sql.Tx, query, _ string, args ...any) (int64, error) {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get generated key: %w", err)
	}
	return id, nil
}

func (sqliteDialect) schemaFile() string { return "schema/sqlite.sql" }

// postgresDialect serves both pgx and lib/pq. Neither driver supports
// LastInsertId, so the key comes back through RETURNING on the same statement.
type postgresDialect struct {
	driver string
}

func (d postgresDialect) Name() string { return d.driver }

func (postgresDialect) Rebind(query string) string {
	if !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (postgresDialect) InsertID(ctx context.Context, tx *sql.Tx, query, idColumn string, args ...any) (int64, error) {
	var id int64
	if err := tx.QueryRowContext(ctx, query+" RETURNING "+idColumn, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (postgresDialect) schemaFile() string { return "schema/postgres.sql" }
