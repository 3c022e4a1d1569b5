package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// formatPercent returns a two-decimal percentage of part in whole. A zero
// whole yields 0.00 rather than an error since token counts may be absent.
func formatPercent(part, whole int) string {
	if whole == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(part)/float64(whole)*100)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
