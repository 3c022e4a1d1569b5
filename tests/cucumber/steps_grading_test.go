package cucumber

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"jeeval/internal/question"
	"jeeval/internal/runner"
	"jeeval/internal/scoring"
)

type collectingObserver struct {
	runner.NopObserver
	diagnostics []runner.Diagnostic
}

func (o *collectingObserver) OnIncorrect(diagnostic runner.Diagnostic) {
	o.diagnostics = append(o.diagnostics, diagnostic)
}

func (s *featureState) iExtractTheAnswerFrom(response string) error {
	s.extracted = question.ExtractBoxedAnswer(strings.ReplaceAll(response, `\"`, `"`))
	return nil
}

func (s *featureState) theExtractedAnswerIs(expected string) error {
	if !s.extracted.Valid || s.extracted.Value != expected {
		return fmt.Errorf("expected extracted answer %q, got %s", expected, s.extracted)
	}
	return nil
}

func (s *featureState) noAnswerIsExtracted() error {
	if s.extracted.Valid {
		return fmt.Errorf("expected no answer, got %q", s.extracted.Value)
	}
	return nil
}

func (s *featureState) iGradeThePrediction(pred, gold, questionType string) error {
	s.result, s.gradeErr = scoring.Grade(gold, question.Predicted(pred), questionType)
	return nil
}

func (s *featureState) iGradeNoPrediction(gold, questionType string) error {
	s.result, s.gradeErr = scoring.Grade(gold, question.NoPrediction(), questionType)
	return nil
}

func (s *featureState) theScoreIs(expected int) error {
	if s.gradeErr != nil {
		return fmt.Errorf("grading failed: %v", s.gradeErr)
	}
	if s.result.Score != expected {
		return fmt.Errorf("expected score %d, got %d", expected, s.result.Score)
	}
	return nil
}

func (s *featureState) theQuestionCountsAs(bucket string) error {
	if s.gradeErr != nil {
		return fmt.Errorf("grading failed: %v", s.gradeErr)
	}
	if want := bucket == "correct"; s.result.Correct != want {
		return fmt.Errorf("expected %s, score %d gave correct=%t", bucket, s.result.Score, s.result.Correct)
	}
	return nil
}

func (s *featureState) gradingFailsWith(kind string) error {
	var target error
	switch kind {
	case "malformed gold":
		target = scoring.ErrMalformedGold
	case "malformed prediction":
		target = scoring.ErrMalformedPrediction
	case "unknown question type":
		target = question.ErrUnknownQuestionType
	}
	if !errors.Is(s.gradeErr, target) {
		return fmt.Errorf("expected %s error, got %v", kind, s.gradeErr)
	}
	return nil
}

// theseAnswers reads a table with columns subject, num, type, gold, pred and
// output_tokens. A pred of None means no answer was given.
func (s *featureState) theseAnswers(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("answers table needs a header and at least one row")
	}
	header := map[string]int{}
	for i, cell := range table.Rows[0].Cells {
		header[strings.TrimSpace(cell.Value)] = i
	}
	for _, column := range []string{"subject", "num", "type", "gold", "pred", "output_tokens"} {
		if _, ok := header[column]; !ok {
			return fmt.Errorf("answers table is missing column %q", column)
		}
	}
	for _, row := range table.Rows[1:] {
		value := func(column string) string {
			return strings.TrimSpace(row.Cells[header[column]].Value)
		}
		num, err := strconv.Atoi(value("num"))
		if err != nil {
			return fmt.Errorf("num: %w", err)
		}
		tokens, err := strconv.Atoi(value("output_tokens"))
		if err != nil {
			return fmt.Errorf("output_tokens: %w", err)
		}
		pred := question.Predicted(value("pred"))
		if value("pred") == "None" {
			pred = question.NoPrediction()
		}
		s.records = append(s.records, question.Record{
			Num:     num,
			Subject: value("subject"),
			Type:    value("type"),
			Answer:  value("gold"),
			Pred:    pred,
			Usage:   &question.Usage{OutputTokens: tokens},
		})
	}
	return nil
}

func (s *featureState) iAggregateThem() error {
	return s.aggregate(s.records)
}

func (s *featureState) iAggregateThemInReverseOrder() error {
	reversed := make([]question.Record, len(s.records))
	for i, record := range s.records {
		reversed[len(s.records)-1-i] = record
	}
	return s.aggregate(reversed)
}

func (s *featureState) aggregate(records []question.Record) error {
	graded := make([]runner.GradedRecord, 0, len(records))
	for _, record := range records {
		gradedRecord, err := runner.GradeRecord(record, false)
		if err != nil {
			return fmt.Errorf("grade %s: %w", record.Label(), err)
		}
		graded = append(graded, gradedRecord)
	}
	observer := &collectingObserver{}
	s.summary, s.aggregateErr = runner.Aggregate(graded, observer)
	s.diagnostics = observer.diagnostics
	return nil
}

func (s *featureState) theTotalScoreIs(expected string) error {
	if s.aggregateErr != nil {
		return fmt.Errorf("aggregation failed: %v", s.aggregateErr)
	}
	got := fmt.Sprintf("%d/%d", s.summary.TotalScore, s.summary.TotalMaxScore)
	if got != expected {
		return fmt.Errorf("expected total %s, got %s", expected, got)
	}
	return nil
}

func (s *featureState) theSubjectScoreIs(subject string, expected int) error {
	parsed, err := question.ParseSubject(subject)
	if err != nil {
		return err
	}
	if got := s.summary.ScoreBySubject[parsed]; got != expected {
		return fmt.Errorf("expected %s score %d, got %d", subject, expected, got)
	}
	return nil
}

func (s *featureState) diagnosticsAreReported(expected int) error {
	if len(s.diagnostics) != expected {
		return fmt.Errorf("expected %d diagnostics, got %d", expected, len(s.diagnostics))
	}
	return nil
}

func (s *featureState) average(bucket string) (float64, error) {
	if bucket == "correct" {
		return s.summary.AverageOutputTokensCorrect()
	}
	return s.summary.AverageOutputTokensIncorrect()
}

func (s *featureState) theAverageOutputTokensIs(bucket, expected string) error {
	want, err := strconv.ParseFloat(expected, 64)
	if err != nil {
		return err
	}
	got, err := s.average(bucket)
	if err != nil {
		return err
	}
	if math.Abs(got-want) > 0.005 {
		return fmt.Errorf("expected %s average %.2f, got %.2f", bucket, want, got)
	}
	return nil
}

func (s *featureState) theAverageIsUndefined(bucket string) error {
	if _, err := s.average(bucket); !errors.Is(err, runner.ErrDivisionByZero) {
		return fmt.Errorf("expected division by zero, got %v", err)
	}
	return nil
}
