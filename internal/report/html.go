package report

import (
	"context"
	"fmt"
	"strings"

	"jeeval/internal/question"
	"jeeval/internal/runner"
)

// RenderHTML renders a standalone HTML report for a graded run.
func RenderHTML(ctx context.Context, results runner.Results) (string, error) {
	var builder strings.Builder
	if err := ReportPage(results).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

type summaryRow struct {
	Label string
	Value string
}

// summaryRows lists the summary table. Undefined averages are left out.
func summaryRows(summary runner.Summary) []summaryRow {
	rows := []summaryRow{{Label: "Score", Value: fmt.Sprintf("%d/%d", summary.TotalScore, summary.TotalMaxScore)}}
	subjectMax := summary.SubjectMaxScore()
	for _, subject := range question.Subjects() {
		rows = append(rows, summaryRow{Label: string(subject), Value: fmt.Sprintf("%d/%d", summary.ScoreBySubject[subject], subjectMax)})
	}
	total := summary.TotalTokens()
	rows = append(rows,
		summaryRow{Label: "Correct", Value: fmt.Sprintf("%d", summary.CorrectCount)},
		summaryRow{Label: "Incorrect", Value: fmt.Sprintf("%d", summary.IncorrectCount)},
		summaryRow{Label: "Input tokens", Value: fmt.Sprintf("%d (%s%%)", summary.InputTokens, formatPercent(summary.InputTokens, total))},
		summaryRow{Label: "Output tokens", Value: fmt.Sprintf("%d (%s%%)", summary.OutputTokens, formatPercent(summary.OutputTokens, total))},
	)
	if average, err := summary.AverageOutputTokensCorrect(); err == nil {
		rows = append(rows, summaryRow{Label: "Output tokens/q (correct)", Value: formatAverage(average)})
	}
	if average, err := summary.AverageOutputTokensIncorrect(); err == nil {
		rows = append(rows, summaryRow{Label: "Output tokens/q (incorrect)", Value: formatAverage(average)})
	}
	return rows
}

// rowState marks question rows for styling: negative, incorrect or correct.
func rowState(record runner.GradedRecord) string {
	switch {
	case record.Score < 0:
		return "negative"
	case !record.Correct:
		return "incorrect"
	default:
		return "correct"
	}
}

func formatScore(record runner.GradedRecord) string {
	return fmt.Sprintf("%d/%d", record.Score, record.MaxScore)
}

func formatGradedAt(results runner.Results) string {
	return results.GradedAt.Format("2006-01-02 15:04:05 MST")
}
