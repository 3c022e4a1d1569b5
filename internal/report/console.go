package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jeeval/internal/question"
	"jeeval/internal/runner"
)

// DiagnosticSeparator frames each incorrect-question block.
const DiagnosticSeparator = "---------"

// ConsoleOptions controls console rendering.
type ConsoleOptions struct {
	NoColor bool
}

// WriteConsole prints the aggregate report. Averages over an empty bucket
// fail with runner.ErrDivisionByZero and nothing is written in that case.
func WriteConsole(w io.Writer, summary runner.Summary, opts ConsoleOptions) error {
	text, err := FormatConsole(summary, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// FormatConsole renders the aggregate report as text.
func FormatConsole(summary runner.Summary, opts ConsoleOptions) (string, error) {
	correct, err := summary.AverageOutputTokensCorrect()
	if err != nil {
		return "", err
	}
	incorrect, err := summary.AverageOutputTokensIncorrect()
	if err != nil {
		return "", err
	}

	total := summary.TotalTokens()
	var b strings.Builder
	fmt.Fprintf(&b, "Total tokens: %d\n", total)
	fmt.Fprintf(&b, "   input: %d (%s%%)\n", summary.InputTokens, formatPercent(summary.InputTokens, total))
	fmt.Fprintf(&b, "  output: %d (%s%%)\n", summary.OutputTokens, formatPercent(summary.OutputTokens, total))
	b.WriteString(stylize(fmt.Sprintf("%d/%d", summary.TotalScore, summary.TotalMaxScore), opts.NoColor, lipgloss.Color("33")))
	b.WriteString("\n")
	subjectMax := summary.SubjectMaxScore()
	for _, subject := range question.Subjects() {
		fmt.Fprintf(&b, "%s %d/%d\n", subject, summary.ScoreBySubject[subject], subjectMax)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "output tokens/q for correct answers: %s\n", formatAverage(correct))
	fmt.Fprintf(&b, "output tokens/q for incorrect answers: %s\n", formatAverage(incorrect))
	return b.String(), nil
}

// WriteDiagnostic prints one incorrect-question block.
func WriteDiagnostic(w io.Writer, diagnostic runner.Diagnostic, opts ConsoleOptions) error {
	_, err := io.WriteString(w, FormatDiagnostic(diagnostic, opts))
	return err
}

// FormatDiagnostic renders one incorrect-question block.
func FormatDiagnostic(diagnostic runner.Diagnostic, opts ConsoleOptions) string {
	header := fmt.Sprintf("%s Q%d incorrect: expected %s, got %s",
		diagnostic.Subject, diagnostic.Num, diagnostic.Expected, diagnostic.Predicted)
	var b strings.Builder
	b.WriteString(DiagnosticSeparator + "\n")
	b.WriteString(stylize(header, opts.NoColor, lipgloss.Color("220")))
	b.WriteString("\n")
	b.WriteString(diagnostic.Response)
	b.WriteString("\n")
	b.WriteString(DiagnosticSeparator + "\n")
	return b.String()
}

func formatAverage(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
