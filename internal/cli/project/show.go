package project

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/cli/styles"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show project details",
		Long:  "Display a project with its materials, steps and categories.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	projectID, err := cli.ParseID(cmd, args)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_PROJECT_ID", err.Error(),
			"Usage: obra project show <id> or obra project show --id=<id>"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return cli.Usage(err)
	}

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

	project, err := cliInstance.App.ProjectService.FetchProjectByID(ctx, projectID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success("project", &project)
	}
	if formatter.JSON {
		return formatter.JSONResult("project", projectJSON(project, true))
	}

	formatter.Printf("%s\n", styles.RenderProject(project))
	return nil
}
