package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/obra/internal/models"
)

// inTx runs fn inside one transaction. Commit happens only when fn succeeds;
// every other exit path rolls back. Failures come back as *Error.
func (d *ProjectDao) inTx(ctx context.Context, op string, fn func(*sql.Tx) error) (err error) {
	start := time.Now()
	defer func() { d.metrics.observe(op, start, err) }()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("failed to begin transaction: %w", err)}
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			d.logger.Error("failed to rollback transaction", "op", op, "error", rbErr)
		}
	}()

	if err := fn(tx); err != nil {
		d.logger.Warn("rolling back", "op", op, "error", err)
		return &Error{Op: op, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("failed to commit transaction: %w", err)}
	}

	d.logger.Debug("committed", "op", op, "elapsed", time.Since(start))
	return nil
}

// queryAll runs a query on tx and scans every row with scan
func queryAll[T any](ctx context.Context, tx *sql.Tx, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]T, 0, 8)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// roundHours normalizes a decimal to the stored scale
func roundHours(d decimal.Decimal) decimal.Decimal {
	return d.Round(models.HoursScale)
}

// nullDecimal converts a nullable column to a value at the stored scale.
// NULL becomes zero.
func nullDecimal(nd decimal.NullDecimal) decimal.Decimal {
	if nd.Valid {
		return roundHours(nd.Decimal)
	}
	return decimal.Zero
}

// nullString stores empty strings as NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// nullInt64ToInt returns zero for NULL
func nullInt64ToInt(nv sql.NullInt64) int {
	if nv.Valid {
		return int(nv.Int64)
	}
	return 0
}
