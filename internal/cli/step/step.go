// Package step holds the cli commands for a project's steps
//
// e.g., obra step ...
package step

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/models"
)

// StepCmd returns the step parent command
func StepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Manage project steps",
	}

	cmd.AddCommand(AddCmd())

	return cmd
}

// AddCmd returns the step add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a step to a project",
		Long: `Add a step to a project. Without --order the step goes after the current last step.

Examples:
  obra step add --project=3 --text="Sand all faces"
  obra step add --project=3 --text="Measure twice" --order=1
`,
		RunE: runAdd,
	}

	cmd.Flags().Int("project", 0, "Project ID (required)")
	cmd.Flags().String("text", "", "Step text (required)")
	cmd.Flags().Int("order", 0, "Position of the step (default: append)")
	for _, name := range []string{"project", "text"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	projectID, _ := cmd.Flags().GetInt("project")
	text, _ := cmd.Flags().GetString("text")
	order, _ := cmd.Flags().GetInt("order")

	if projectID <= 0 {
		return cli.Fail(formatter, cli.Usage(errors.New("--project must be a positive integer")))
	}
	if strings.TrimSpace(text) == "" {
		return cli.Fail(formatter, cli.Invalid(errors.New("step text cannot be empty")))
	}
	if order < 0 {
		return cli.Fail(formatter, cli.Invalid(errors.New("order cannot be negative")))
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

	step, err := cliInstance.App.ProjectService.AddStep(ctx, &models.Step{
		ProjectID: projectID,
		Text:      strings.TrimSpace(text),
		Order:     order,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success("step", step)
	}
	if formatter.JSON {
		return formatter.JSONResult("step", map[string]any{
			"id":         step.ID,
			"project_id": step.ProjectID,
			"text":       step.Text,
			"order":      step.Order,
		})
	}

	formatter.Successf("Step %d added to project %d (ID: %d)\n", step.Order, projectID, step.ID)
	return nil
}
