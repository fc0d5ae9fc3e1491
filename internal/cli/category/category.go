// Package category holds the cli commands for categories shared between projects
//
// e.g., obra category ...
package category

import (
	"github.com/spf13/cobra"
)

// CategoryCmd returns the category parent command
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AssignCmd())

	return cmd
}
