package config

import (
	"fmt"
	"strings"
)

// Issue is one problem in a config file, keyed by its YAML path such as
// "models[1].input_per_million".
type Issue struct {
	Field   string
	Message string
}

// ValidationError lists every problem found in one config file. Path is empty
// when the config did not come from a file.
type ValidationError struct {
	Path   string
	Issues []Issue
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "invalid config"
	}
	var b strings.Builder
	if err.Path != "" {
		fmt.Fprintf(&b, "%s: ", err.Path)
	}
	fmt.Fprintf(&b, "invalid config (%d issues)", len(err.Issues))
	for _, issue := range err.Issues {
		fmt.Fprintf(&b, "\n  %s: %s", issue.Field, issue.Message)
	}
	return b.String()
}

// Field returns the first issue reported for field.
func (err *ValidationError) Field(field string) (Issue, bool) {
	for _, issue := range err.Issues {
		if issue.Field == field {
			return issue, true
		}
	}
	return Issue{}, false
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}
