// Package setup holds the command that prepares a new obra database
//
// e.g., obra init
package setup

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/database"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the obra tables",
		Long: `Create the project, material, step, category and project_category tables in the
configured database. Existing tables are left as they are.

Examples:
  obra init
  OBRA_DB_DRIVER=pgx OBRA_DB_DSN=postgres://localhost/obra obra init
  obra init --write-config   # also write the effective config to ~/.config/obra/config.yaml
`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("write-config", false, "Write the effective configuration to the config file")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	writeConfig, _ := cmd.Flags().GetBool("write-config")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	dialect := cliInstance.App.Dialect()
	if err := database.ApplySchema(ctx, cliInstance.App.DB(), dialect); err != nil {
		return cli.Fail(formatter, cli.WithExitCode(cli.ExitDataErr, err))
	}

	if writeConfig {
		if err := cliInstance.Config.Save(); err != nil {
			return cli.Fail(formatter, err)
		}
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("driver", dialect.Name())
	}

	formatter.Successf("Database ready (%s)\n", dialect.Name())
	return nil
}
