package question

import (
	"encoding/json"
	"fmt"
)

// Abstention is the token a model emits to skip a question on purpose.
const Abstention = "O"

// Prediction is a model answer that may be missing.
//
// Set is false when the source record had no pred field at all, which means
// the answer still has to be extracted from the raw response.
type Prediction struct {
	Value string
	Valid bool
	Set   bool
}

// Predicted returns a present prediction.
func Predicted(value string) Prediction {
	return Prediction{Value: value, Valid: true, Set: true}
}

// NoPrediction returns a prediction for which nothing could be extracted.
func NoPrediction() Prediction {
	return Prediction{Set: true}
}

// IsAbstention reports whether the prediction is missing or an explicit skip.
func (p Prediction) IsAbstention() bool {
	return !p.Valid || p.Value == Abstention
}

// String renders the prediction the way reports show it.
func (p Prediction) String() string {
	if !p.Valid {
		return "None"
	}
	return p.Value
}

// MarshalJSON encodes a missing prediction as null.
func (p Prediction) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// UnmarshalJSON accepts a string or null.
func (p *Prediction) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = NoPrediction()
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("pred must be a string or null: %w", err)
	}
	*p = Predicted(value)
	return nil
}
