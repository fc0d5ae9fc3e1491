package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/cli/category"
	"github.com/thenoetrevino/obra/internal/cli/material"
	"github.com/thenoetrevino/obra/internal/cli/menu"
	"github.com/thenoetrevino/obra/internal/cli/project"
	"github.com/thenoetrevino/obra/internal/cli/setup"
	"github.com/thenoetrevino/obra/internal/cli/step"
	"github.com/thenoetrevino/obra/internal/config"
	"github.com/thenoetrevino/obra/internal/logging"
)

// set by -ldflags at release time
var version = "dev"

var rootCmd = NewRootCmd()

// NewRootCmd builds the obra command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "obra",
		Short:   "Obra - track DIY projects, their materials and steps",
		Long:    `Obra keeps a catalogue of projects with estimated and actual hours, difficulty, notes, materials, ordered steps and shared categories.`,
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(cmd)
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.Usage(err)
	})

	root.AddCommand(project.ProjectCmd())
	root.AddCommand(material.MaterialCmd())
	root.AddCommand(step.StepCmd())
	root.AddCommand(category.CategoryCmd())
	root.AddCommand(menu.MenuCmd())
	root.AddCommand(setup.InitCmd())

	return root
}

// initLogging sends logs to ~/.obra/logs at the configured level. Logging
// is best effort: a broken config is reported by the command itself, and a
// log file that cannot be opened only earns a warning.
func initLogging(cmd *cobra.Command) {
	level := "info"
	if cfg, err := config.Load(); err == nil {
		level = cfg.Log.Level
	}
	if err := logging.Init(level); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
	}
}

// Execute runs the root command, cancelling its context on interrupt
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
