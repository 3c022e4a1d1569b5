package runner

import (
	"time"

	"jeeval/internal/question"
)

// recordingObserver captures observer callbacks in order.
type recordingObserver struct {
	graded    []GradedRecord
	incorrect []Diagnostic
}

func (o *recordingObserver) OnGraded(record GradedRecord) {
	o.graded = append(o.graded, record)
}

func (o *recordingObserver) OnIncorrect(diagnostic Diagnostic) {
	o.incorrect = append(o.incorrect, diagnostic)
}

func fixedDeps() Dependencies {
	return Dependencies{
		RunID: func() (string, error) { return "run-1", nil },
		Now:   func() time.Time { return time.Date(2025, 5, 26, 10, 0, 0, 0, time.UTC) },
	}
}

func usage(input, output int) *question.Usage {
	return &question.Usage{InputTokens: input, OutputTokens: output, TotalTokens: input + output}
}

// samplePaper is a small mixed paper covering every question type.
func samplePaper() []question.Record {
	return []question.Record{
		{Num: 1, Subject: "math", Type: "SCA", Answer: "B", Pred: question.Predicted("B"), Response: "\\boxed{B}", Usage: usage(100, 400)},
		{Num: 2, Subject: "math", Type: "MCA", Answer: "AC", Pred: question.Predicted("A"), Response: "\\boxed{A}", Usage: usage(100, 900)},
		{Num: 1, Subject: "physics", Type: "NT", Answer: "[1.0,2.0]", Pred: question.Predicted("1.5"), Response: "\\boxed{1.5}", Usage: usage(120, 600)},
		{Num: 2, Subject: "physics", Type: "M", Answer: "D", Pred: question.NoPrediction(), Response: "I am not sure."},
		{Num: 1, Subject: "chemistry", Type: "MCA", Answer: "ABD", Pred: question.Predicted("A,B,D"), Response: "\\boxed{A,B,D}", Usage: usage(80, 300)},
		{Num: 2, Subject: "chemistry", Type: "SCA", Answer: "C", Pred: question.Predicted("A"), Response: "\\boxed{A}", Usage: usage(90, 200)},
	}
}
