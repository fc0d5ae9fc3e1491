package category

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
)

// AssignCmd returns the category assign subcommand
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign a category to a project",
		Long: `Assign an existing category to a project. Assigning a category the project
already has succeeds without creating a duplicate link.

Examples:
  obra category assign --project=3 --category=2
`,
		RunE: runAssign,
	}

	cmd.Flags().Int("project", 0, "Project ID (required)")
	cmd.Flags().Int("category", 0, "Category ID (required)")
	for _, name := range []string{"project", "category"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAssign(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	projectID, _ := cmd.Flags().GetInt("project")
	categoryID, _ := cmd.Flags().GetInt("category")
	if projectID <= 0 || categoryID <= 0 {
		return cli.Fail(formatter, cli.Usage(errors.New("--project and --category must be positive integers")))
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

	if err := cliInstance.App.ProjectService.AssignCategory(ctx, projectID, categoryID); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("assignment", map[string]any{
			"project_id":  projectID,
			"category_id": categoryID,
		})
	}

	formatter.Successf("Category %d assigned to project %d\n", categoryID, projectID)
	return nil
}
