package menu

import (
	"log"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
)

// MenuCmd returns the interactive menu command
func MenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Work with projects through a numbered menu",
		Long: `Start the interactive menu. Select an operation by number; press Enter on
an empty line to quit. Errors are printed and the menu continues.`,
		Args: cobra.NoArgs,
		RunE: runMenu,
	}

	cmd.Flags().Bool("echo", false, "Echo input lines (for piped input)")

	return cmd
}

func runMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	echo, _ := cmd.Flags().GetBool("echo")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	opts := []Option{WithLogger(slog.Default())}
	if echo {
		opts = append(opts, WithEcho())
	}

	runner := NewRunner(cliInstance.App.ProjectService, cmd.InOrStdin(), cmd.OutOrStdout(), opts...)
	return runner.Run(ctx)
}
