package runner

import (
	"fmt"
	"time"

	"jeeval/internal/question"
	"jeeval/internal/scoring"
)

// Dependencies allows injecting the run id source and clock.
type Dependencies struct {
	RunID func() (string, error)
	Now   func() time.Time
}

// Params configures a grading run.
type Params struct {
	// Source names the results file being graded.
	Source string
	// Reextract re-derives every prediction from the raw response.
	Reextract bool
	Observer  Observer
	Deps      Dependencies
}

// questionKey identifies a question within one paper.
type questionKey struct {
	subject question.Subject
	num     int
}

// Grade scores every record and aggregates the run. Grading stops at the
// first failing record, including a repeated (subject, num), and no partial
// results are returned.
func Grade(records []question.Record, params Params) (Results, error) {
	observer := observerOrNop(params.Observer)
	deps := withDefaultDependencies(params.Deps)

	runID, err := deps.RunID()
	if err != nil {
		return Results{}, err
	}

	graded := make([]GradedRecord, 0, len(records))
	seen := make(map[questionKey]int, len(records))
	for i, record := range records {
		gradedRecord, err := GradeRecord(record, params.Reextract)
		if err != nil {
			return Results{}, err
		}
		key := questionKey{subject: gradedRecord.Subject, num: gradedRecord.Num}
		if first, ok := seen[key]; ok {
			return Results{}, &RecordError{
				Num:     record.Num,
				Subject: record.Subject,
				Err:     fmt.Errorf("%w: records [%d] and [%d]", ErrDuplicateQuestion, first, i),
			}
		}
		seen[key] = i
		observer.OnGraded(gradedRecord)
		graded = append(graded, gradedRecord)
	}

	summary, err := Aggregate(graded, observer)
	if err != nil {
		return Results{}, err
	}
	return Results{
		RunID:     runID,
		Source:    params.Source,
		GradedAt:  deps.Now().UTC(),
		Questions: graded,
		Summary:   summary,
	}, nil
}

// GradeRecord scores a single record, extracting the prediction from the
// response when the record carries none or when reextract is set.
func GradeRecord(record question.Record, reextract bool) (GradedRecord, error) {
	subject, err := question.ParseSubject(record.Subject)
	if err != nil {
		return GradedRecord{}, &RecordError{Num: record.Num, Subject: record.Subject, Err: err}
	}
	pred := record.Pred
	if !pred.Set || reextract {
		pred = question.ExtractBoxedAnswer(record.Response)
	}
	result, err := scoring.Grade(record.Answer, pred, record.Type)
	if err != nil {
		return GradedRecord{}, &RecordError{Num: record.Num, Subject: record.Subject, Err: err}
	}
	return GradedRecord{
		Num:       record.Num,
		Subject:   subject,
		Type:      question.Type(record.Type),
		Expected:  record.Answer,
		Predicted: pred,
		Response:  record.Response,
		Score:     result.Score,
		MaxScore:  result.MaxScore,
		Correct:   result.Correct,
		Usage:     record.Usage,
	}, nil
}

func withDefaultDependencies(deps Dependencies) Dependencies {
	if deps.RunID == nil {
		deps.RunID = NewRunID
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return deps
}
