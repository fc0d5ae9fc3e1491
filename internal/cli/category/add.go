package category

import (
	"errors"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
)

// AddCmd returns the category add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		Long: `Create a category that projects can be assigned to. Names are unique.

Examples:
  CATEGORY_ID=$(obra category add --name="Outdoor" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("name", "", "Category name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	name, _ := cmd.Flags().GetString("name")
	if strings.TrimSpace(name) == "" {
		return cli.Fail(formatter, cli.Invalid(errors.New("category name cannot be empty")))
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

	category, err := cliInstance.App.ProjectService.AddCategory(ctx, strings.TrimSpace(name))
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		return formatter.Success("category", category)
	}
	if formatter.JSON {
		return formatter.JSONResult("category", map[string]any{
			"id":   category.ID,
			"name": category.Name,
		})
	}

	formatter.Successf("Category '%s' created (ID: %d)\n", category.Name, category.ID)
	return nil
}
