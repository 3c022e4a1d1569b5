package runner

import (
	"errors"
	"testing"

	"jeeval/internal/question"
)

func gradeAll(t *testing.T, records []question.Record) []GradedRecord {
	t.Helper()
	graded := make([]GradedRecord, 0, len(records))
	for _, record := range records {
		result, err := GradeRecord(record, false)
		if err != nil {
			t.Fatalf("grade %s: %v", record.Label(), err)
		}
		graded = append(graded, result)
	}
	return graded
}

// TestAggregateIsAdditive verifies any split of a run sums to the whole.
func TestAggregateIsAdditive(t *testing.T) {
	graded := gradeAll(t, samplePaper())
	whole, err := Aggregate(graded, nil)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	for split := 0; split <= len(graded); split++ {
		first, err := Aggregate(graded[:split], nil)
		if err != nil {
			t.Fatalf("aggregate first half: %v", err)
		}
		second, err := Aggregate(graded[split:], nil)
		if err != nil {
			t.Fatalf("aggregate second half: %v", err)
		}
		merged := first.Merge(second)
		if merged.TotalScore != whole.TotalScore || merged.TotalMaxScore != whole.TotalMaxScore {
			t.Fatalf("split %d: totals differ: %+v vs %+v", split, merged, whole)
		}
		if merged.CorrectCount != whole.CorrectCount || merged.IncorrectOutputTokens != whole.IncorrectOutputTokens {
			t.Fatalf("split %d: buckets differ: %+v vs %+v", split, merged, whole)
		}
		for _, subject := range question.Subjects() {
			if merged.ScoreBySubject[subject] != whole.ScoreBySubject[subject] {
				t.Fatalf("split %d: %s differs", split, subject)
			}
		}
	}
}

// TestAggregateIsOrderIndependent verifies totals do not depend on record order.
func TestAggregateIsOrderIndependent(t *testing.T) {
	graded := gradeAll(t, samplePaper())
	reversed := make([]GradedRecord, len(graded))
	for i := range graded {
		reversed[len(graded)-1-i] = graded[i]
	}
	forward, _ := Aggregate(graded, nil)
	backward, _ := Aggregate(reversed, nil)
	if forward.TotalScore != backward.TotalScore || forward.CorrectOutputTokens != backward.CorrectOutputTokens {
		t.Fatalf("order changed totals: %+v vs %+v", forward, backward)
	}
}

// TestAggregateThresholdBucket verifies a partial score of 3 is counted as correct.
func TestAggregateThresholdBucket(t *testing.T) {
	graded := gradeAll(t, []question.Record{
		{Num: 1, Subject: "chemistry", Type: "MCA", Answer: "ABCD", Pred: question.Predicted("A,B,C"), Usage: usage(10, 70)},
	})
	observer := &recordingObserver{}
	summary, err := Aggregate(graded, observer)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if summary.CorrectCount != 1 || summary.IncorrectCount != 0 || len(observer.incorrect) != 0 {
		t.Fatalf("expected score 3 of 4 in the correct bucket, got %+v", summary)
	}
	if summary.CorrectOutputTokens != 70 {
		t.Fatalf("unexpected correct tokens: %d", summary.CorrectOutputTokens)
	}
}

// TestAggregateWithoutUsage verifies missing usage counts as zero tokens.
func TestAggregateWithoutUsage(t *testing.T) {
	graded := gradeAll(t, []question.Record{
		{Num: 1, Subject: "math", Type: "SCA", Answer: "A", Pred: question.Predicted("A")},
		{Num: 2, Subject: "math", Type: "SCA", Answer: "A", Pred: question.Predicted("B")},
	})
	summary, err := Aggregate(graded, nil)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if summary.TotalTokens() != 0 || summary.CorrectOutputTokens != 0 {
		t.Fatalf("expected zero tokens, got %+v", summary)
	}
	average, err := summary.AverageOutputTokensCorrect()
	if err != nil || average != 0 {
		t.Fatalf("expected zero average, got %v (%v)", average, err)
	}
}

// TestAverageOutputTokensEmptyBucket verifies an empty bucket cannot be averaged.
func TestAverageOutputTokensEmptyBucket(t *testing.T) {
	graded := gradeAll(t, []question.Record{
		{Num: 1, Subject: "math", Type: "SCA", Answer: "A", Pred: question.Predicted("A"), Usage: usage(1, 50)},
	})
	summary, err := Aggregate(graded, nil)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if average, err := summary.AverageOutputTokensCorrect(); err != nil || average != 50 {
		t.Fatalf("expected average 50, got %v (%v)", average, err)
	}
	if _, err := summary.AverageOutputTokensIncorrect(); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected division by zero, got %v", err)
	}
}

// TestSubjectMaxScore verifies the per-subject maximum uses integer division.
func TestSubjectMaxScore(t *testing.T) {
	summary := Summary{TotalMaxScore: 180}
	if summary.SubjectMaxScore() != 60 {
		t.Fatalf("expected 60, got %d", summary.SubjectMaxScore())
	}
	summary.TotalMaxScore = 23
	if summary.SubjectMaxScore() != 7 {
		t.Fatalf("expected 7, got %d", summary.SubjectMaxScore())
	}
}
