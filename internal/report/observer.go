package report

import (
	"io"

	"jeeval/internal/runlog"
	"jeeval/internal/runner"
)

// DiagnosticObserver writes a diagnostic block for every incorrect question
// and, when a logger is attached, one progress line per graded question.
type DiagnosticObserver struct {
	out    io.Writer
	opts   ConsoleOptions
	logger *runlog.Logger
	err    error
}

// NewDiagnosticObserver creates an observer writing to out.
func NewDiagnosticObserver(out io.Writer, opts ConsoleOptions) *DiagnosticObserver {
	return &DiagnosticObserver{out: out, opts: opts}
}

// WithLogger attaches a run logger for per-question progress.
func (o *DiagnosticObserver) WithLogger(logger *runlog.Logger) *DiagnosticObserver {
	o.logger = logger
	return o
}

func (o *DiagnosticObserver) OnGraded(record runner.GradedRecord) {
	o.logger.Infof("Graded %s Q%d (%s): expected %s, got %s, score %d/%d",
		record.Subject, record.Num, record.Type, record.Expected, record.Predicted, record.Score, record.MaxScore)
}

func (o *DiagnosticObserver) OnIncorrect(diagnostic runner.Diagnostic) {
	if o.err != nil {
		return
	}
	o.err = WriteDiagnostic(o.out, diagnostic, o.opts)
}

// Err returns the first write error, if any.
func (o *DiagnosticObserver) Err() error {
	return o.err
}
