package runner

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero indicates an average over an empty correctness bucket.
var ErrDivisionByZero = errors.New("division by zero")

// ErrDuplicateQuestion indicates two records for the same subject and number.
var ErrDuplicateQuestion = errors.New("duplicate question")

// RecordError attaches the offending question to a grading failure.
type RecordError struct {
	Num     int
	Subject string
	Err     error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s Q%d: %v", e.Subject, e.Num, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
