package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Schema returns the DDL for the dialect
func Schema(dialect Dialect) (string, error) {
	data, err := schemaFS.ReadFile(dialect.schemaFile())
	if err != nil {
		return "", fmt.Errorf("failed to read schema for %s: %w", dialect.Name(), err)
	}
	return string(data), nil
}

// ApplySchema creates any missing tables. It is only called by `obra init`
// and tests; the DAO assumes the tables already exist.
func ApplySchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	ddl, err := Schema(dialect)
	if err != nil {
		return err
	}
	for _, stmt := range splitStatements(ddl) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute ddl: %w", err)
		}
	}
	return nil
}

func splitStatements(ddl string) []string {
	parts := strings.Split(ddl, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
