package question

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownQuestionType indicates a question type outside SCA, MCA, NT and M.
var ErrUnknownQuestionType = errors.New("unknown question type")

// ErrUnknownSubject indicates a subject outside math, physics and chemistry.
var ErrUnknownSubject = errors.New("unknown subject")

// Type identifies how a question is answered and scored.
type Type string

const (
	// TypeSCA is a single-correct-answer question.
	TypeSCA Type = "SCA"
	// TypeMCA is a multiple-correct-answer question.
	TypeMCA Type = "MCA"
	// TypeNT is a numeric-answer question.
	TypeNT Type = "NT"
	// TypeM is scored like SCA but worth more.
	TypeM Type = "M"
)

// Types returns every supported question type.
func Types() []Type {
	return []Type{TypeSCA, TypeMCA, TypeNT, TypeM}
}

// ParseType validates a raw question type.
func ParseType(raw string) (Type, error) {
	switch t := Type(raw); t {
	case TypeSCA, TypeMCA, TypeNT, TypeM:
		return t, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownQuestionType, raw)
	}
}

// MaxScore returns the full-credit score for the type.
func (t Type) MaxScore() int {
	switch t {
	case TypeSCA:
		return 3
	case TypeMCA, TypeNT, TypeM:
		return 4
	default:
		return 0
	}
}

// HasOptions reports whether questions of this type list answer options.
func (t Type) HasOptions() bool {
	return t != TypeNT
}

// Subject is an exam section.
type Subject string

const (
	SubjectMath      Subject = "math"
	SubjectPhysics   Subject = "physics"
	SubjectChemistry Subject = "chemistry"
)

// Subjects returns every subject in report order.
func Subjects() []Subject {
	return []Subject{SubjectMath, SubjectPhysics, SubjectChemistry}
}

// ParseSubject validates a raw subject name.
func ParseSubject(raw string) (Subject, error) {
	switch s := Subject(raw); s {
	case SubjectMath, SubjectPhysics, SubjectChemistry:
		return s, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSubject, raw)
	}
}

// Usage records token accounting for a single model response.
type Usage struct {
	InputTokens       int `json:"input_tokens"`
	CachedInputTokens int `json:"cached_input_tokens"`
	OutputTokens      int `json:"output_tokens"`
	ReasoningTokens   int `json:"reasoning_tokens"`
	TotalTokens       int `json:"total_tokens"`
}

// Record is a single answered question as produced by a solver run.
type Record struct {
	Num      int        `json:"num"`
	Subject  string     `json:"subject"`
	Type     string     `json:"type"`
	Answer   string     `json:"ans"`
	Pred     Prediction `json:"pred"`
	Response string     `json:"response"`
	Usage    *Usage     `json:"usage,omitempty"`
}

// Label identifies a record in messages, e.g. "physics Q7".
func (r Record) Label() string {
	return fmt.Sprintf("%s Q%d", strings.TrimSpace(r.Subject), r.Num)
}
