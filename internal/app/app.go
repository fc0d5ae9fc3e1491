package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thenoetrevino/obra/internal/database"
	projectservice "github.com/thenoetrevino/obra/internal/services/project"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db       *sql.DB
	dialect  database.Dialect
	registry *prometheus.Registry
	textfile string
	logger   *slog.Logger

	// Service layer (business logic)
	ProjectService projectservice.Service
}

// New creates a new App with all services initialized.
// The App takes ownership of db and closes it in Close.
func New(db *sql.DB, dialect database.Dialect, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	registry := cfg.registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	dao := database.NewProjectDao(db, dialect,
		database.WithMetrics(database.NewMetrics(registry)),
		database.WithLogger(cfg.logger),
	)

	return &App{
		db:             db,
		dialect:        dialect,
		registry:       registry,
		textfile:       cfg.textfile,
		logger:         cfg.logger,
		ProjectService: projectservice.NewService(dao),
	}
}

// DB returns the underlying connection pool
func (a *App) DB() *sql.DB {
	return a.db
}

// Dialect returns the SQL dialect of the connected store
func (a *App) Dialect() database.Dialect {
	return a.dialect
}

// Registry returns the registry DAO metrics are recorded in
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}

// Close writes the metrics textfile, if configured, and closes the database.
func (a *App) Close() error {
	var errs []error
	if a.textfile != "" {
		if err := prometheus.WriteToTextfile(a.textfile, a.registry); err != nil {
			errs = append(errs, fmt.Errorf("write metrics textfile: %w", err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		a.logger.Error("app shutdown failed", "error", err)
		return err
	}
	return nil
}
