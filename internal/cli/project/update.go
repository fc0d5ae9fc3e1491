package project

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/models"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update project details",
		Long: `Update the name, hours, difficulty or notes of a project.
Only the flags that are given change; the rest keep their current value.

Examples:
  obra project update 3 --actual-hours=7.25
  obra project update --id=3 --name="Oak bookshelf" --difficulty=3
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	addDetailFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	projectID, err := cli.ParseID(cmd, args)
	if err != nil {
		return cli.Fail(formatter, cli.Usage(err))
	}

	flags := cmd.Flags()
	if !flags.Changed("name") && !flags.Changed("estimated-hours") && !flags.Changed("actual-hours") &&
		!flags.Changed("difficulty") && !flags.Changed("notes") {
		return cli.Fail(formatter, cli.Usage(errors.New("nothing to update: pass at least one of --name, --estimated-hours, --actual-hours, --difficulty, --notes")))
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

	svc := cliInstance.App.ProjectService
	project, err := svc.FetchProjectByID(ctx, projectID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if err := applyChangedFlags(cmd, &project); err != nil {
		return cli.Fail(formatter, err)
	}

	if err := svc.ModifyProjectDetails(ctx, &project); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success("project", &project)
	}
	if formatter.JSON {
		return formatter.JSONResult("project", projectJSON(project, false))
	}

	formatter.Successf("Project %d updated successfully\n", project.ID)
	return nil
}

// applyChangedFlags overwrites the fields whose flags were set
func applyChangedFlags(cmd *cobra.Command, project *models.Project) error {
	flags := cmd.Flags()

	if flags.Changed("name") {
		name, _ := flags.GetString("name")
		if strings.TrimSpace(name) == "" {
			return cli.Invalid(errors.New("project name cannot be empty"))
		}
		project.Name = strings.TrimSpace(name)
	}
	if flags.Changed("estimated-hours") {
		s, _ := flags.GetString("estimated-hours")
		hours, err := cli.ParseHours(s)
		if err != nil {
			return cli.Invalid(err)
		}
		project.EstimatedHours = hours
	}
	if flags.Changed("actual-hours") {
		s, _ := flags.GetString("actual-hours")
		hours, err := cli.ParseHours(s)
		if err != nil {
			return cli.Invalid(err)
		}
		project.ActualHours = hours
	}
	if flags.Changed("difficulty") {
		d, _ := flags.GetInt("difficulty")
		if err := cli.ValidateDifficulty(d); err != nil {
			return cli.Invalid(err)
		}
		project.Difficulty = d
	}
	if flags.Changed("notes") {
		project.Notes, _ = flags.GetString("notes")
	}
	return nil
}
