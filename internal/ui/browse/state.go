package browse

import (
	"jeeval/internal/question"
	"jeeval/internal/runner"
)

// Filter selects which graded questions are listed.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterIncorrect Filter = "incorrect"
	FilterMath      Filter = Filter(question.SubjectMath)
	FilterPhysics   Filter = Filter(question.SubjectPhysics)
	FilterChemistry Filter = Filter(question.SubjectChemistry)
)

// filterCycle is the order in which tab steps through filters.
var filterCycle = []Filter{FilterAll, FilterIncorrect, FilterMath, FilterPhysics, FilterChemistry}

// State captures what the viewer shows.
type State struct {
	Results runner.Results
	Filter  Filter
	// Visible holds indexes into Results.Questions for the active filter.
	Visible []int
	// Detail is true while the selected question's response is expanded.
	Detail bool
}

// NewState lists every question of a run.
func NewState(results runner.Results) State {
	return ApplyFilter(State{Results: results}, FilterAll)
}

// ApplyFilter recomputes the visible questions for a filter.
func ApplyFilter(state State, filter Filter) State {
	state.Filter = filter
	state.Visible = make([]int, 0, len(state.Results.Questions))
	for i, record := range state.Results.Questions {
		if matches(filter, record) {
			state.Visible = append(state.Visible, i)
		}
	}
	state.Detail = false
	return state
}

// NextFilter advances to the following filter in the cycle.
func NextFilter(state State) State {
	next := filterCycle[0]
	for i, filter := range filterCycle {
		if filter == state.Filter {
			next = filterCycle[(i+1)%len(filterCycle)]
			break
		}
	}
	return ApplyFilter(state, next)
}

func matches(filter Filter, record runner.GradedRecord) bool {
	switch filter {
	case FilterAll, "":
		return true
	case FilterIncorrect:
		return !record.Correct
	default:
		return string(record.Subject) == string(filter)
	}
}

// Selected returns the question at a table cursor position.
func (s State) Selected(cursor int) (runner.GradedRecord, bool) {
	if cursor < 0 || cursor >= len(s.Visible) {
		return runner.GradedRecord{}, false
	}
	return s.Results.Questions[s.Visible[cursor]], true
}
