package cost

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"jeeval/internal/question"
)

// ErrUnknownModel indicates no configured model matches a results file.
var ErrUnknownModel = errors.New("unknown model")

// Model is the per-million-token pricing for one model.
type Model struct {
	ID               string  `json:"id" yaml:"id"`
	InputPerMillion  float64 `json:"input_per_million" yaml:"input_per_million"`
	OutputPerMillion float64 `json:"output_per_million" yaml:"output_per_million"`
}

// DefaultModels returns the built-in price list. Output tokens cost four times
// as much as input tokens for every listed model.
func DefaultModels() []Model {
	return []Model{
		{ID: "o4-mini", InputPerMillion: 1.1, OutputPerMillion: 4.4},
		{ID: "gpt-4o", InputPerMillion: 2.5, OutputPerMillion: 10},
		{ID: "o3", InputPerMillion: 10, OutputPerMillion: 40},
	}
}

// DetectModel picks the model whose id appears in name. When several ids
// match, the last one in models wins.
func DetectModel(name string, models []Model) (Model, error) {
	var found *Model
	for i := range models {
		if strings.Contains(name, models[i].ID) {
			found = &models[i]
		}
	}
	if found == nil {
		return Model{}, fmt.Errorf("%w: file name %q should contain a model id", ErrUnknownModel, name)
	}
	return *found, nil
}

// FindModel looks a model up by exact id.
func FindModel(id string, models []Model) (Model, error) {
	for _, model := range models {
		if model.ID == id {
			return model, nil
		}
	}
	return Model{}, fmt.Errorf("%w %q", ErrUnknownModel, id)
}

// Breakdown is the token usage and spend for one results file.
type Breakdown struct {
	Model        Model
	InputTokens  int
	OutputTokens int
}

// Compute sums token usage over records. Records without usage count as zero.
func Compute(records []question.Record, model Model) Breakdown {
	breakdown := Breakdown{Model: model}
	for _, record := range records {
		if record.Usage == nil {
			continue
		}
		breakdown.InputTokens += record.Usage.InputTokens
		breakdown.OutputTokens += record.Usage.OutputTokens
	}
	return breakdown
}

func (b Breakdown) TotalTokens() int {
	return b.InputTokens + b.OutputTokens
}

func (b Breakdown) InputCost() float64 {
	return float64(b.InputTokens) * b.Model.InputPerMillion / 1e6
}

func (b Breakdown) OutputCost() float64 {
	return float64(b.OutputTokens) * b.Model.OutputPerMillion / 1e6
}

func (b Breakdown) TotalCost() float64 {
	return b.InputCost() + b.OutputCost()
}

// Write prints the token and cost split.
func (b Breakdown) Write(w io.Writer) error {
	total := b.TotalTokens()
	totalCost := b.TotalCost()
	lines := []string{
		fmt.Sprintf("Model: %s", b.Model.ID),
		fmt.Sprintf("Total tokens: %d", total),
		fmt.Sprintf("   input: %d (%.2f%%)", b.InputTokens, share(float64(b.InputTokens), float64(total))),
		fmt.Sprintf("  output: %d (%.2f%%)", b.OutputTokens, share(float64(b.OutputTokens), float64(total))),
		fmt.Sprintf("Total cost: $%.6f", totalCost),
		fmt.Sprintf("   input: $%.6f (%.2f%%)", b.InputCost(), share(b.InputCost(), totalCost)),
		fmt.Sprintf("  output: $%.6f (%.2f%%)", b.OutputCost(), share(b.OutputCost(), totalCost)),
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func share(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part * 100 / whole
}
