// Package material holds the cli commands for a project's materials
//
// e.g., obra material ...
package material

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/models"
)

// MaterialCmd returns the material parent command
func MaterialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Manage project materials",
	}

	cmd.AddCommand(AddCmd())

	return cmd
}

// AddCmd returns the material add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a material to a project",
		Long: `Add a material to a project.

Examples:
  obra material add --project=3 --name="Oak board" --count=4 --cost=18.50
`,
		RunE: runAdd,
	}

	cmd.Flags().Int("project", 0, "Project ID (required)")
	cmd.Flags().String("name", "", "Material name (required)")
	cmd.Flags().Int("count", 1, "Number required")
	cmd.Flags().String("cost", "0", "Cost per unit (two decimal places)")
	for _, name := range []string{"project", "name"} {
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
	name, _ := cmd.Flags().GetString("name")
	count, _ := cmd.Flags().GetInt("count")
	costStr, _ := cmd.Flags().GetString("cost")

	if projectID <= 0 {
		return cli.Fail(formatter, cli.Usage(errors.New("--project must be a positive integer")))
	}
	if strings.TrimSpace(name) == "" {
		return cli.Fail(formatter, cli.Invalid(errors.New("material name cannot be empty")))
	}
	if count < 0 {
		return cli.Fail(formatter, cli.Invalid(errors.New("count cannot be negative")))
	}
	cost, err := cli.ParseHours(costStr)
	if err != nil {
		return cli.Fail(formatter, cli.Invalid(err))
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

	material, err := cliInstance.App.ProjectService.AddMaterial(ctx, &models.Material{
		ProjectID:   projectID,
		Name:        strings.TrimSpace(name),
		NumRequired: count,
		Cost:        cost,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success("material", material)
	}
	if formatter.JSON {
		return formatter.JSONResult("material", map[string]any{
			"id":           material.ID,
			"project_id":   material.ProjectID,
			"name":         material.Name,
			"num_required": material.NumRequired,
			"cost":         material.Cost.StringFixed(models.HoursScale),
		})
	}

	formatter.Successf("Material '%s' added to project %d (ID: %d)\n", material.Name, projectID, material.ID)
	return nil
}
