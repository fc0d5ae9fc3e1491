package app

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger     *slog.Logger
	registry   *prometheus.Registry
	textfile   string
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithRegistry records DAO metrics in reg instead of a registry of the App's
// own. The metrics textfile is gathered from the same registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(cfg *appConfig) {
		cfg.registry = reg
	}
}

// WithMetricsTextfile makes Close write the gathered metrics to path in the
// node_exporter textfile format
func WithMetricsTextfile(path string) Option {
	return func(cfg *appConfig) {
		cfg.textfile = path
	}
}
