package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jeeval/internal/question"
	"jeeval/internal/runner"
)

// renderHeader renders the run header line.
func renderHeader(results runner.Results, noColor bool) string {
	line := "Run " + results.RunID
	if results.Source != "" {
		line += " | " + results.Source
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderSummary renders the score line.
func renderSummary(summary runner.Summary, noColor bool) string {
	parts := []string{fmt.Sprintf("Score: %d/%d", summary.TotalScore, summary.TotalMaxScore)}
	for _, subject := range question.Subjects() {
		parts = append(parts, fmt.Sprintf("%s %d/%d", subject, summary.ScoreBySubject[subject], summary.SubjectMaxScore()))
	}
	parts = append(parts, fmt.Sprintf("Correct: %d Incorrect: %d", summary.CorrectCount, summary.IncorrectCount))
	return stylize(strings.Join(parts, " | "), noColor, lipgloss.Color("242"))
}

// renderFooter renders the key help and active filter.
func renderFooter(state State, noColor bool) string {
	line := fmt.Sprintf("Filter: %s (%d) | tab: filter  enter: response  q: quit", state.Filter, len(state.Visible))
	return stylize(line, noColor, lipgloss.Color("244"))
}

// renderDetail renders the full response of one question.
func renderDetail(record runner.GradedRecord, noColor bool) string {
	title := fmt.Sprintf("%s %s (%s) expected %s, got %s, score %d/%d",
		record.Subject, formatQuestionID(record), record.Type,
		record.Expected, record.Predicted.String(), record.Score, record.MaxScore)
	return stylize(title, noColor, scoreColor(record.Score)) + "\n\n" + record.Response
}

// RenderStatic renders the whole run as plain text for non-interactive output.
func RenderStatic(results runner.Results, noColor bool) string {
	state := NewState(results)
	var b strings.Builder
	b.WriteString(renderHeader(results, noColor))
	b.WriteString("\n")
	b.WriteString(renderSummary(results.Summary, noColor))
	b.WriteString("\n\n")
	columns := defaultColumns()
	for i, column := range columns {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(padRight(column.Title, column.Width))
	}
	b.WriteString("\n")
	for _, row := range rowsForState(state, true) {
		for i, cell := range row {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(padRight(cell, columns[i].Width))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}
