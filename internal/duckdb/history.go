package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jeeval/internal/question"
)

// RunSummary is one row of the run history.
type RunSummary struct {
	RunID          string
	Source         string
	GradedAt       time.Time
	TotalScore     int
	TotalMaxScore  int
	CorrectCount   int
	IncorrectCount int
	InputTokens    int
	OutputTokens   int
}

// RunHistory lists ingested runs, most recently graded first. A limit of
// zero or less returns every run.
func RunHistory(ctx context.Context, db *sql.DB, limit int) ([]RunSummary, error) {
	if db == nil {
		return nil, errors.New("duckdb: db is nil")
	}
	query := `SELECT run_id, source, graded_at, total_score, total_max_score,
	            correct_count, incorrect_count, input_tokens, output_tokens
	          FROM runs
	          ORDER BY graded_at DESC, run_id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var run RunSummary
		if err := rows.Scan(
			&run.RunID,
			&run.Source,
			&run.GradedAt,
			&run.TotalScore,
			&run.TotalMaxScore,
			&run.CorrectCount,
			&run.IncorrectCount,
			&run.InputTokens,
			&run.OutputTokens,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// SubjectScores returns the per-subject totals of one run. Subjects without
// questions are reported as zero.
func SubjectScores(ctx context.Context, db *sql.DB, runID string) (map[question.Subject]int, error) {
	if db == nil {
		return nil, errors.New("duckdb: db is nil")
	}
	rows, err := db.QueryContext(ctx, `SELECT subject, score FROM v_subject_scores WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("query subject scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[question.Subject]int, len(question.Subjects()))
	for _, subject := range question.Subjects() {
		scores[subject] = 0
	}
	for rows.Next() {
		var subject string
		var score int
		if err := rows.Scan(&subject, &score); err != nil {
			return nil, fmt.Errorf("scan subject score: %w", err)
		}
		scores[question.Subject(subject)] = score
	}
	return scores, rows.Err()
}
