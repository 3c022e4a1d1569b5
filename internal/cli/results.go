package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"jeeval/internal/question"
	"jeeval/internal/runner"
)

// loadGraded returns graded results for a file that is either a raw answer
// array (graded here) or a results.json written by eval --write.
func loadGraded(path string, reextract bool) (runner.Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return runner.Results{}, fmt.Errorf("%w: %s", question.ErrMissingInputFile, path)
		}
		return runner.Results{}, err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return runner.LoadResults(path)
	}
	records, err := question.DecodeRecords(data)
	if err != nil {
		return runner.Results{}, fmt.Errorf("%s: %w", path, err)
	}
	return runner.Grade(records, runner.Params{Source: filepath.Base(path), Reextract: reextract})
}
