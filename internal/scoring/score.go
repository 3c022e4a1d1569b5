package scoring

import (
	"errors"
	"fmt"
	"strings"

	"jeeval/internal/question"
)

// CorrectThreshold is the score at or above which an answer counts as correct
// in reports. It does not depend on the question's maximum.
const CorrectThreshold = 3

// WrongAnswerPenalty is awarded for a committed wrong answer on SCA, M and MCA.
const WrongAnswerPenalty = -1

// ErrMalformedPrediction indicates a numeric prediction that is missing or not a number.
var ErrMalformedPrediction = errors.New("malformed prediction")

// Result is the outcome of grading one question.
type Result struct {
	Score    int  `json:"score"`
	MaxScore int  `json:"max_score"`
	Correct  bool `json:"correct"`
}

// IsCorrect reports whether a score lands in the correct bucket.
func IsCorrect(score int) bool {
	return score >= CorrectThreshold
}

// Grade parses the raw type and gold answer and scores the prediction.
func Grade(goldRaw string, pred question.Prediction, typeRaw string) (Result, error) {
	qt, err := question.ParseType(typeRaw)
	if err != nil {
		return Result{}, err
	}
	gold, err := ParseGold(goldRaw, qt)
	if err != nil {
		return Result{}, err
	}
	score, err := Score(gold, pred, qt)
	if err != nil {
		return Result{}, err
	}
	return Result{Score: score, MaxScore: qt.MaxScore(), Correct: IsCorrect(score)}, nil
}

// Score applies the grading policy for the question type.
func Score(gold GoldSpec, pred question.Prediction, qt question.Type) (int, error) {
	switch qt {
	case question.TypeSCA, question.TypeM:
		return scoreExact(gold, pred, qt)
	case question.TypeMCA:
		return scoreOptionSet(gold, pred)
	case question.TypeNT:
		return scoreNumeric(gold, pred)
	default:
		return 0, fmt.Errorf("%w %q", question.ErrUnknownQuestionType, string(qt))
	}
}

// scoreExact grades single-letter questions with negative marking.
func scoreExact(gold GoldSpec, pred question.Prediction, qt question.Type) (int, error) {
	if err := expectKind(gold, qt, GoldExact); err != nil {
		return 0, err
	}
	if gold.Kind == GoldBonus || (pred.Valid && pred.Value == gold.Value) {
		return qt.MaxScore(), nil
	}
	if pred.IsAbstention() {
		return 0, nil
	}
	return WrongAnswerPenalty, nil
}

// scoreOptionSet grades multi-correct questions.
//
// A prediction covering every correct option gets full marks even when it
// also selects wrong options. A prediction made only of correct options gets
// one mark per option. Anything else is penalised.
func scoreOptionSet(gold GoldSpec, pred question.Prediction) (int, error) {
	full := question.TypeMCA.MaxScore()
	if err := expectKind(gold, question.TypeMCA, GoldOptionSet); err != nil {
		return 0, err
	}
	if gold.Kind == GoldBonus {
		return full, nil
	}
	if pred.IsAbstention() {
		return 0, nil
	}
	selected := make(map[string]struct{})
	for _, option := range strings.Split(pred.Value, ",") {
		selected[option] = struct{}{}
	}
	if containsAll(selected, gold.Options) {
		return full, nil
	}
	if containsAll(gold.Options, selected) {
		return len(selected), nil
	}
	return WrongAnswerPenalty, nil
}

// scoreNumeric grades numeric questions. There is no partial credit and no
// penalty, but a missing or non-numeric prediction is an error.
func scoreNumeric(gold GoldSpec, pred question.Prediction) (int, error) {
	full := question.TypeNT.MaxScore()
	if err := expectKind(gold, question.TypeNT, GoldNumeric); err != nil {
		return 0, err
	}
	if gold.Kind == GoldBonus {
		return full, nil
	}
	if !pred.Valid {
		return 0, fmt.Errorf("%w: no numeric answer", ErrMalformedPrediction)
	}
	value, err := parseNumber(pred.Value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedPrediction, pred.Value)
	}
	for _, alternative := range gold.Alternatives {
		if alternative.Matches(value) {
			return full, nil
		}
	}
	return 0, nil
}

func expectKind(gold GoldSpec, qt question.Type, kind GoldKind) error {
	if gold.Kind == GoldBonus || gold.Kind == kind {
		return nil
	}
	return fmt.Errorf("%w: %s answer key used for %s question", ErrMalformedGold, gold.Kind, qt)
}

func containsAll(set, subset map[string]struct{}) bool {
	for key := range subset {
		if _, ok := set[key]; !ok {
			return false
		}
	}
	return true
}
