package runner

import (
	"errors"
	"strings"
	"testing"

	"jeeval/internal/question"
)

// TestValidateAcceptsSamplePaper verifies a well-formed paper has no issues.
func TestValidateAcceptsSamplePaper(t *testing.T) {
	if err := Validate(samplePaper()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestValidateCollectsIssues verifies every problem is reported at once.
func TestValidateCollectsIssues(t *testing.T) {
	records := []question.Record{
		{Num: 1, Subject: "biology", Type: "SCA", Answer: "A", Pred: question.Predicted("A")},
		{Num: 2, Subject: "math", Type: "TF", Answer: "A", Pred: question.Predicted("A")},
		{Num: 3, Subject: "math", Type: "NT", Answer: "[1,", Pred: question.Predicted("1")},
		{Num: 4, Subject: "math", Type: "NT", Answer: "4", Pred: question.Predicted("four")},
		{Num: 4, Subject: "math", Type: "SCA", Answer: "A", Pred: question.Predicted("A")},
	}
	err := Validate(records)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := make([]string, 0, len(validationErr.Issues))
	for _, issue := range validationErr.Issues {
		fields = append(fields, issue.Field)
	}
	want := []string{"[0].subject", "[1].type", "[2].ans", "[3].pred", "[4].num"}
	if strings.Join(fields, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected issue fields: %v", fields)
	}
	if !strings.Contains(err.Error(), "results validation failed") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
