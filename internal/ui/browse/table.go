package browse

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

func defaultColumns() []table.Column {
	return columnsForWidth(100)
}

// columnsForWidth gives the predicted column whatever width remains.
func columnsForWidth(width int) []table.Column {
	predicted := width - 10 - 5 - 5 - 12 - 8 - 8 - 14
	if predicted < 10 {
		predicted = 10
	}
	return []table.Column{
		{Title: "Subject", Width: 10},
		{Title: "Q", Width: 5},
		{Title: "Type", Width: 5},
		{Title: "Expected", Width: 12},
		{Title: "Predicted", Width: predicted},
		{Title: "Score", Width: 8},
		{Title: "Tokens", Width: 8},
	}
}

// rowsForState converts the visible questions into table rows.
func rowsForState(state State, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Visible))
	for _, index := range state.Visible {
		record := state.Results.Questions[index]
		rows = append(rows, table.Row{
			string(record.Subject),
			formatQuestionID(record),
			string(record.Type),
			truncate(record.Expected, 12),
			truncate(record.Predicted.String(), 40),
			formatScore(record, noColor),
			formatTokens(record.OutputTokens()),
		})
	}
	return rows
}
