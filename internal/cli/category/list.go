package category

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
)

// ListCmd returns the category list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
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

	categories, err := cliInstance.App.ProjectService.FetchCategories(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		for i := range categories {
			if err := formatter.Success("category", &categories[i]); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		out := make([]map[string]any, 0, len(categories))
		for _, c := range categories {
			out = append(out, map[string]any{"id": c.ID, "name": c.Name})
		}
		return formatter.JSONResult("categories", out)
	}

	if len(categories) == 0 {
		formatter.Printf("No categories found\n")
		return nil
	}

	for _, c := range categories {
		formatter.Printf("  [%d] %s\n", c.ID, c.Name)
	}
	return nil
}
