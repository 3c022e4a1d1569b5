package runner

import (
	"fmt"

	"jeeval/internal/question"
	"jeeval/internal/scoring"
)

// NewSummary returns an empty summary with every subject present.
func NewSummary() Summary {
	bySubject := make(map[question.Subject]int, len(question.Subjects()))
	for _, subject := range question.Subjects() {
		bySubject[subject] = 0
	}
	return Summary{ScoreBySubject: bySubject}
}

// Aggregate folds graded records into a summary. Every incorrect-bucket record
// is reported to the observer. The first unknown subject aborts the pass.
func Aggregate(records []GradedRecord, observer Observer) (Summary, error) {
	observer = observerOrNop(observer)
	summary := NewSummary()
	for _, record := range records {
		subject, err := question.ParseSubject(string(record.Subject))
		if err != nil {
			return Summary{}, &RecordError{Num: record.Num, Subject: string(record.Subject), Err: err}
		}
		if scoring.IsCorrect(record.Score) {
			summary.CorrectCount++
			summary.CorrectOutputTokens += record.OutputTokens()
		} else {
			observer.OnIncorrect(diagnosticFor(record))
			summary.IncorrectCount++
			summary.IncorrectOutputTokens += record.OutputTokens()
		}
		summary.TotalScore += record.Score
		summary.TotalMaxScore += record.MaxScore
		summary.ScoreBySubject[subject] += record.Score
		summary.InputTokens += record.InputTokens()
		summary.OutputTokens += record.OutputTokens()
	}
	return summary, nil
}

// Merge adds two summaries, e.g. from disjoint halves of a run.
func (s Summary) Merge(other Summary) Summary {
	merged := NewSummary()
	for subject, score := range s.ScoreBySubject {
		merged.ScoreBySubject[subject] += score
	}
	for subject, score := range other.ScoreBySubject {
		merged.ScoreBySubject[subject] += score
	}
	merged.TotalScore = s.TotalScore + other.TotalScore
	merged.TotalMaxScore = s.TotalMaxScore + other.TotalMaxScore
	merged.CorrectCount = s.CorrectCount + other.CorrectCount
	merged.IncorrectCount = s.IncorrectCount + other.IncorrectCount
	merged.CorrectOutputTokens = s.CorrectOutputTokens + other.CorrectOutputTokens
	merged.IncorrectOutputTokens = s.IncorrectOutputTokens + other.IncorrectOutputTokens
	merged.InputTokens = s.InputTokens + other.InputTokens
	merged.OutputTokens = s.OutputTokens + other.OutputTokens
	return merged
}

// SubjectMaxScore is the per-subject maximum shown in reports, assuming the
// paper is split evenly across the three subjects.
func (s Summary) SubjectMaxScore() int {
	return s.TotalMaxScore / len(question.Subjects())
}

// TotalTokens is the sum of input and output tokens.
func (s Summary) TotalTokens() int {
	return s.InputTokens + s.OutputTokens
}

// AverageOutputTokensCorrect is the mean output tokens spent on a correct answer.
func (s Summary) AverageOutputTokensCorrect() (float64, error) {
	return average(s.CorrectOutputTokens, s.CorrectCount, "correct")
}

// AverageOutputTokensIncorrect is the mean output tokens spent on an incorrect answer.
func (s Summary) AverageOutputTokensIncorrect() (float64, error) {
	return average(s.IncorrectOutputTokens, s.IncorrectCount, "incorrect")
}

func average(sum, count int, bucket string) (float64, error) {
	if count == 0 {
		return 0, fmt.Errorf("average output tokens for %s answers: %w", bucket, ErrDivisionByZero)
	}
	return float64(sum) / float64(count), nil
}
