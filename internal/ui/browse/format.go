package browse

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jeeval/internal/runner"
)

// formatQuestionID returns the display id for a question row.
func formatQuestionID(record runner.GradedRecord) string {
	return "Q" + pad2(record.Num)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 || value < 0 {
		return strconv.Itoa(value)
	}
	return "0" + strconv.Itoa(value)
}

// formatScore renders score/max with a color for the bucket.
func formatScore(record runner.GradedRecord, noColor bool) string {
	text := strconv.Itoa(record.Score) + "/" + strconv.Itoa(record.MaxScore)
	return stylize(text, noColor, scoreColor(record.Score))
}

// formatTokens formats token counts for display.
func formatTokens(tokens int) string {
	if tokens <= 0 {
		return "n/a"
	}
	return strconv.Itoa(tokens)
}

// truncate shortens single-line text for table cells.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 3:
		return lipgloss.Color("42")
	case score > 0:
		return lipgloss.Color("220")
	case score < 0:
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("244")
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
