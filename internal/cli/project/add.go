package project

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/models"
)

// AddCmd returns the project add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new project",
		Long: `Add a new project.

Examples:
  # Simple project (human-readable output)
  obra project add --name="Bookshelf" --difficulty=2

  # Quiet mode for bash capture
  PROJECT_ID=$(obra project add --name="Bookshelf" --estimated-hours=6.5 --quiet)

  # JSON output
  obra project add --name="Bookshelf" --notes="oak, not pine" --json
`,
		RunE: runAdd,
	}

	addDetailFlags(cmd)
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	project, err := projectFromFlags(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
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

	created, err := cliInstance.App.ProjectService.AddProject(ctx, project)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		return formatter.Success("project", created)
	}
	if formatter.JSON {
		return formatter.JSONResult("project", projectJSON(*created, false))
	}

	formatter.Successf("Project '%s' added successfully (ID: %d)\n", created.Name, created.ID)
	return nil
}

// projectFromFlags builds a project from the detail flags, validating each
func projectFromFlags(cmd *cobra.Command) (*models.Project, error) {
	name, _ := cmd.Flags().GetString("name")
	estimated, _ := cmd.Flags().GetString("estimated-hours")
	actual, _ := cmd.Flags().GetString("actual-hours")
	difficulty, _ := cmd.Flags().GetInt("difficulty")
	notes, _ := cmd.Flags().GetString("notes")

	if strings.TrimSpace(name) == "" {
		return nil, cli.Invalid(errors.New("project name cannot be empty"))
	}

	project := &models.Project{
		Name:       strings.TrimSpace(name),
		Difficulty: difficulty,
		Notes:      notes,
	}
	if err := cli.ValidateDifficulty(difficulty); err != nil {
		return nil, cli.Invalid(err)
	}

	var err error
	if project.EstimatedHours, err = cli.ParseHours(estimated); err != nil {
		return nil, cli.Invalid(err)
	}
	if project.ActualHours, err = cli.ParseHours(actual); err != nil {
		return nil, cli.Invalid(err)
	}
	return project, nil
}
