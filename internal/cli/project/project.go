// Package project holds all cli commands related to projects
//
// e.g., obra project ...
package project

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/models"
)

// ProjectCmd returns the project parent command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// projectJSON is the wire form of a project for --json output.
// Child collections are included when detail is set.
func projectJSON(p models.Project, detail bool) map[string]any {
	out := map[string]any{
		"id":              p.ID,
		"name":            p.Name,
		"estimated_hours": p.EstimatedHours.StringFixed(models.HoursScale),
		"actual_hours":    p.ActualHours.StringFixed(models.HoursScale),
		"difficulty":      p.Difficulty,
		"notes":           p.Notes,
	}
	if !detail {
		return out
	}

	materials := make([]map[string]any, 0, len(p.Materials))
	for _, m := range p.Materials {
		materials = append(materials, map[string]any{
			"id":           m.ID,
			"name":         m.Name,
			"num_required": m.NumRequired,
			"cost":         m.Cost.StringFixed(models.HoursScale),
		})
	}
	steps := make([]map[string]any, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, map[string]any{
			"id":    s.ID,
			"text":  s.Text,
			"order": s.Order,
		})
	}
	categories := make([]map[string]any, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, map[string]any{
			"id":   c.ID,
			"name": c.Name,
		})
	}

	out["materials"] = materials
	out["steps"] = steps
	out["categories"] = categories
	return out
}

// addDetailFlags registers the editable project fields
func addDetailFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().String("estimated-hours", "0", "Estimated hours (two decimal places)")
	cmd.Flags().String("actual-hours", "0", "Actual hours (two decimal places)")
	cmd.Flags().Int("difficulty", models.MinDifficulty, "Difficulty from 1 to 5")
	cmd.Flags().String("notes", "", "Free-form notes (markdown)")
}
