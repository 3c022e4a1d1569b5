package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	duckdbdriver "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"jeeval/internal/runner"
)

// ErrRunExists indicates a run id that was already ingested.
var ErrRunExists = errors.New("run already ingested")

// IngestRun stores a graded run and its questions in one transaction.
func IngestRun(ctx context.Context, db *sql.DB, results runner.Results) error {
	if ctx == nil {
		return errors.New("duckdb: context is nil")
	}
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if results.RunID == "" {
		return errors.New("duckdb: run id is empty")
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	var existing int
	if err := conn.QueryRowContext(ctx, `SELECT count(*) FROM runs WHERE run_id = ?`, results.RunID).Scan(&existing); err != nil {
		return fmt.Errorf("lookup run: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("%w: %s", ErrRunExists, results.RunID)
	}

	if _, err := conn.ExecContext(ctx, "BEGIN TRANSACTION"); err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := insertRun(ctx, conn, results); err != nil {
		_, _ = conn.ExecContext(ctx, "ROLLBACK")
		return err
	}
	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertRun(ctx context.Context, conn *sql.Conn, results runner.Results) error {
	summary := results.Summary
	if _, err := conn.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, source, graded_at, total_score, total_max_score,
		   correct_count, incorrect_count, input_tokens, output_tokens)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		results.RunID,
		results.Source,
		results.GradedAt.UTC(),
		summary.TotalScore,
		summary.TotalMaxScore,
		summary.CorrectCount,
		summary.IncorrectCount,
		summary.InputTokens,
		summary.OutputTokens,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	appender, err := newQuestionAppender(conn)
	if err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	for _, record := range results.Questions {
		var predicted any
		if record.Predicted.Valid {
			predicted = record.Predicted.Value
		}
		if err := appender.AppendRow(
			duckdbdriver.UUID(uuid.New()),
			results.RunID,
			string(record.Subject),
			int32(record.Num),
			string(record.Type),
			record.Expected,
			predicted,
			int32(record.Score),
			int32(record.MaxScore),
			record.Correct,
			int64(record.OutputTokens()),
		); err != nil {
			_ = appender.Close()
			return fmt.Errorf("append %s Q%d: %w", record.Subject, record.Num, err)
		}
	}
	if err := appender.Close(); err != nil {
		return fmt.Errorf("flush questions: %w", err)
	}
	return nil
}

// newQuestionAppender creates a DuckDB appender for bulk question inserts.
func newQuestionAppender(conn *sql.Conn) (*duckdbdriver.Appender, error) {
	var appender *duckdbdriver.Appender
	if err := conn.Raw(func(driverConn any) error {
		rawConn, ok := driverConn.(driver.Conn)
		if !ok {
			return fmt.Errorf("duckdb driver connection unavailable (got %T)", driverConn)
		}
		var err error
		appender, err = duckdbdriver.NewAppenderFromConn(rawConn, "", "graded_questions")
		return err
	}); err != nil {
		return nil, err
	}
	if appender == nil {
		return nil, fmt.Errorf("duckdb appender initialization failed")
	}
	return appender, nil
}
