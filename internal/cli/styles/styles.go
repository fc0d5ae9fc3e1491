// Package styles holds the lipgloss styles used for human-readable output
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/obra/internal/config"
	"github.com/thenoetrevino/obra/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Difficulty:"
	ValueStyle    lipgloss.Style
	SectionStyle  lipgloss.Style // For section headers like "Materials", "Steps"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderProjectSummary renders the one-line form used by list output
// Format: "[3] Bookshelf  (difficulty 2, 4.5h est)"
func RenderProjectSummary(p models.Project) string {
	return fmt.Sprintf("  %s %s  %s",
		LabelStyle.Render(fmt.Sprintf("[%d]", p.ID)),
		ValueStyle.Render(p.Name),
		SubtitleStyle.Render(fmt.Sprintf("(difficulty %d, %sh est)", p.Difficulty, p.EstimatedHours.StringFixed(models.HoursScale))))
}

// RenderProject renders the full aggregate inside a card
func RenderProject(p models.Project) string {
	var content strings.Builder

	content.WriteString(TitleStyle.Render(fmt.Sprintf("#%d: %s", p.ID, p.Name)))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("%s  %s  %s\n",
		Field("Difficulty", fmt.Sprintf("%d", p.Difficulty)),
		Field("Estimated", p.EstimatedHours.StringFixed(models.HoursScale)+"h"),
		Field("Actual", p.ActualHours.StringFixed(models.HoursScale)+"h")))

	if p.Notes != "" {
		content.WriteString(SectionStyle.Render("Notes"))
		content.WriteString("\n")
		// card padding and border take 6 columns
		for _, line := range strings.Split(RenderNotes(p.Notes, CardWidth-8), "\n") {
			content.WriteString("  " + line + "\n")
		}
	}

	if len(p.Categories) > 0 {
		names := make([]string, 0, len(p.Categories))
		for _, c := range p.Categories {
			names = append(names, "["+c.Name+"]")
		}
		content.WriteString(SectionStyle.Render("Categories"))
		content.WriteString("\n  " + ValueStyle.Render(strings.Join(names, " ")) + "\n")
	}

	if len(p.Materials) > 0 {
		content.WriteString(SectionStyle.Render("Materials"))
		content.WriteString("\n")
		for _, m := range p.Materials {
			content.WriteString(fmt.Sprintf("  • %s x%d  %s\n",
				ValueStyle.Render(m.Name), m.NumRequired,
				SubtitleStyle.Render("$"+m.Cost.StringFixed(models.HoursScale))))
		}
	}

	if len(p.Steps) > 0 {
		content.WriteString(SectionStyle.Render("Steps"))
		content.WriteString("\n")
		for _, s := range p.Steps {
			content.WriteString(fmt.Sprintf("  %s %s\n",
				LabelStyle.Render(fmt.Sprintf("%d.", s.Order)),
				ValueStyle.Render(s.Text)))
		}
	}

	return RenderCard(strings.TrimRight(content.String(), "\n"))
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
