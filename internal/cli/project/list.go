package project

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/cli/styles"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects ordered by name. Materials, steps and categories are shown by 'obra project show'.",
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

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

	projects, err := cliInstance.App.ProjectService.FetchAllProjects(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		// Just print IDs (one per line)
		for i := range projects {
			if err := formatter.Success("project", &projects[i]); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		out := make([]map[string]any, 0, len(projects))
		for _, p := range projects {
			out = append(out, projectJSON(p, false))
		}
		return formatter.JSONResult("projects", out)
	}

	if len(projects) == 0 {
		formatter.Printf("No projects found\n")
		return nil
	}

	formatter.Printf("Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		formatter.Printf("%s\n", styles.RenderProjectSummary(p))
	}

	return nil
}
