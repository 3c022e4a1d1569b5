package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"jeeval/internal/question"
)

// BonusMarker voids a question and awards full credit to everyone.
const BonusMarker = "BONUS"

// ErrMalformedGold indicates a gold answer that does not follow the answer key grammar.
var ErrMalformedGold = errors.New("malformed gold answer")

// GoldKind tags the variant held by a GoldSpec.
type GoldKind int

const (
	// GoldBonus awards full credit regardless of the prediction.
	GoldBonus GoldKind = iota
	// GoldExact expects a single option letter.
	GoldExact
	// GoldOptionSet expects a set of option letters.
	GoldOptionSet
	// GoldNumeric accepts any of a list of numeric alternatives.
	GoldNumeric
)

func (k GoldKind) String() string {
	switch k {
	case GoldBonus:
		return "bonus"
	case GoldExact:
		return "exact"
	case GoldOptionSet:
		return "option-set"
	case GoldNumeric:
		return "numeric"
	default:
		return fmt.Sprintf("GoldKind(%d)", int(k))
	}
}

// GoldSpec is a parsed answer key entry.
type GoldSpec struct {
	Kind         GoldKind
	Value        string
	Options      map[string]struct{}
	Alternatives []Alternative
}

// Alternative is one acceptable numeric answer: a literal or an inclusive range.
type Alternative struct {
	Low     float64
	High    float64
	IsRange bool
}

// Literal builds an alternative matched by equality.
func Literal(value float64) Alternative {
	return Alternative{Low: value, High: value}
}

// Range builds an inclusive alternative.
func Range(low, high float64) Alternative {
	return Alternative{Low: low, High: high, IsRange: true}
}

// Matches reports whether value is accepted by the alternative.
func (a Alternative) Matches(value float64) bool {
	if a.IsRange {
		return a.Low <= value && value <= a.High
	}
	return value == a.Low
}

// ParseGold interprets a raw gold answer for the given question type.
func ParseGold(gold string, qt question.Type) (GoldSpec, error) {
	if gold == BonusMarker {
		if _, err := question.ParseType(string(qt)); err != nil {
			return GoldSpec{}, err
		}
		return GoldSpec{Kind: GoldBonus}, nil
	}
	if gold == "" {
		return GoldSpec{}, fmt.Errorf("%w: empty answer", ErrMalformedGold)
	}
	switch qt {
	case question.TypeSCA, question.TypeM:
		return GoldSpec{Kind: GoldExact, Value: gold}, nil
	case question.TypeMCA:
		options := make(map[string]struct{}, len(gold))
		for _, option := range gold {
			options[string(option)] = struct{}{}
		}
		return GoldSpec{Kind: GoldOptionSet, Options: options}, nil
	case question.TypeNT:
		alternatives, err := parseAlternatives(gold)
		if err != nil {
			return GoldSpec{}, err
		}
		return GoldSpec{Kind: GoldNumeric, Alternatives: alternatives}, nil
	default:
		return GoldSpec{}, fmt.Errorf("%w %q", question.ErrUnknownQuestionType, string(qt))
	}
}

// parseAlternatives splits "3|5" or "[1.0,2.0]|7" into alternatives.
func parseAlternatives(gold string) ([]Alternative, error) {
	candidates := strings.Split(gold, "|")
	alternatives := make([]Alternative, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate == "" {
			return nil, fmt.Errorf("%w: empty alternative in %q", ErrMalformedGold, gold)
		}
		if !strings.HasPrefix(candidate, "[") {
			value, err := parseNumber(candidate)
			if err != nil {
				return nil, fmt.Errorf("%w: literal %q is not a number", ErrMalformedGold, candidate)
			}
			alternatives = append(alternatives, Literal(value))
			continue
		}
		if !strings.HasSuffix(candidate, "]") || len(candidate) < 2 {
			return nil, fmt.Errorf("%w: unterminated range %q", ErrMalformedGold, candidate)
		}
		bounds := strings.Split(candidate[1:len(candidate)-1], ",")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("%w: range %q needs exactly two bounds", ErrMalformedGold, candidate)
		}
		low, err := parseNumber(bounds[0])
		if err != nil {
			return nil, fmt.Errorf("%w: range bound %q is not a number", ErrMalformedGold, bounds[0])
		}
		high, err := parseNumber(bounds[1])
		if err != nil {
			return nil, fmt.Errorf("%w: range bound %q is not a number", ErrMalformedGold, bounds[1])
		}
		alternatives = append(alternatives, Range(low, high))
	}
	return alternatives, nil
}

// parseNumber parses a float, tolerating surrounding whitespace and overflow to ±Inf.
func parseNumber(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return value, nil
		}
		return 0, err
	}
	return value, nil
}
