package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/obra/internal/app"
	"github.com/thenoetrevino/obra/internal/cli/styles"
	"github.com/thenoetrevino/obra/internal/config"
	"github.com/thenoetrevino/obra/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is false when the App came from the command context, in which
	// case the caller that injected it is responsible for closing it
	owned bool
}

// NewCLI loads the config, opens the configured database and builds the
// application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewCLIFromConfig(ctx, cfg)
}

// NewCLIFromConfig is NewCLI with an already loaded config
func NewCLIFromConfig(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, dialect, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.DataSource())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	application := app.New(db, dialect,
		app.WithLogger(slog.Default()),
		app.WithMetricsTextfile(cfg.Metrics.Textfile),
	)

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// GetCLIFromContext returns a CLI around the App stored in ctx by WithApp,
// or builds a new one from the user's config
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}

type appKey struct{}

// WithApp stores an App in ctx for GetCLIFromContext
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
