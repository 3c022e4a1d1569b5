package runner

import (
	"time"

	"jeeval/internal/question"
)

// Results is the outcome of grading one results file.
type Results struct {
	RunID     string         `json:"run_id"`
	Source    string         `json:"source"`
	GradedAt  time.Time      `json:"graded_at"`
	Questions []GradedRecord `json:"questions"`
	Summary   Summary        `json:"summary"`
}

// GradedRecord is a scored question.
type GradedRecord struct {
	Num       int                 `json:"num"`
	Subject   question.Subject    `json:"subject"`
	Type      question.Type       `json:"type"`
	Expected  string              `json:"expected"`
	Predicted question.Prediction `json:"predicted"`
	Response  string              `json:"response,omitempty"`
	Score     int                 `json:"score"`
	MaxScore  int                 `json:"max_score"`
	Correct   bool                `json:"correct"`
	Usage     *question.Usage     `json:"usage,omitempty"`
}

// OutputTokens returns the record's output token count, or 0 without usage.
func (r GradedRecord) OutputTokens() int {
	if r.Usage == nil {
		return 0
	}
	return r.Usage.OutputTokens
}

// InputTokens returns the record's input token count, or 0 without usage.
func (r GradedRecord) InputTokens() int {
	if r.Usage == nil {
		return 0
	}
	return r.Usage.InputTokens
}

// Summary aggregates scores and token usage over graded records.
type Summary struct {
	TotalScore            int                      `json:"total_score"`
	TotalMaxScore         int                      `json:"total_max_score"`
	ScoreBySubject        map[question.Subject]int `json:"score_by_subject"`
	CorrectCount          int                      `json:"correct_count"`
	IncorrectCount        int                      `json:"incorrect_count"`
	CorrectOutputTokens   int                      `json:"correct_output_tokens_sum"`
	IncorrectOutputTokens int                      `json:"incorrect_output_tokens_sum"`
	InputTokens           int                      `json:"input_tokens"`
	OutputTokens          int                      `json:"output_tokens"`
}
