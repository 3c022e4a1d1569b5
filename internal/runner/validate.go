package runner

import (
	"fmt"
	"strings"

	"jeeval/internal/question"
	"jeeval/internal/scoring"
)

// Issue captures a problem with a single record.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports every problem found in a results file.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("results validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks every record without grading it, so that all problems in a
// file can be reported at once. NT predictions are checked the same way
// grading would check them.
func Validate(records []question.Record) error {
	collector := &issueCollector{}
	seen := map[string]int{}
	for i, record := range records {
		prefix := fmt.Sprintf("[%d]", i)
		if _, err := question.ParseSubject(record.Subject); err != nil {
			collector.add(prefix+".subject", err.Error())
		}
		key := fmt.Sprintf("%s/%d", record.Subject, record.Num)
		if first, ok := seen[key]; ok {
			collector.add(prefix+".num", fmt.Sprintf("duplicates [%d] (%s)", first, record.Label()))
		} else {
			seen[key] = i
		}
		qt, err := question.ParseType(record.Type)
		if err != nil {
			collector.add(prefix+".type", err.Error())
			continue
		}
		gold, err := scoring.ParseGold(record.Answer, qt)
		if err != nil {
			collector.add(prefix+".ans", err.Error())
			continue
		}
		pred := record.Pred
		if !pred.Set {
			pred = question.ExtractBoxedAnswer(record.Response)
		}
		if _, err := scoring.Score(gold, pred, qt); err != nil {
			collector.add(prefix+".pred", err.Error())
		}
	}
	return collector.result()
}
