package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// Output styling shared by the commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	goodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))

	badStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F43F5E"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 2)
)

// scoreStyle colors a 0..100 score by the pass/excellent bands.
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 85:
		return goodStyle
	case score >= 60:
		return warnStyle
	default:
		return badStyle
	}
}

// statusBadge renders a node status with its marker.
func statusBadge(status string) string {
	switch status {
	case "completed":
		return goodStyle.Render("✓ completed")
	case "in_progress":
		return warnStyle.Render("▸ in progress")
	case "unlocked":
		return labelStyle.Render("○ unlocked")
	case "failed":
		return badStyle.Render("✗ failed")
	default:
		return labelStyle.Render("× locked")
	}
}

func printField(label, value string) {
	fmt.Printf("%s %s\n", labelStyle.Render(label+":"), value)
}
