package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"jeeval/internal/testutil"
)

const samplePaperJSON = `[
  {"num": 1, "subject": "math", "type": "SCA", "ans": "B", "pred": "B", "response": "\\boxed{B}", "usage": {"input_tokens": 100, "output_tokens": 300}},
  {"num": 1, "subject": "physics", "type": "MCA", "ans": "AC", "pred": "A", "response": "\\boxed{A}", "usage": {"input_tokens": 100, "output_tokens": 500}},
  {"num": 1, "subject": "chemistry", "type": "NT", "ans": "2.5|[3,4]", "response": "so \\boxed{3.5}", "usage": {"input_tokens": 100, "output_tokens": 200}}
]`

// writeTestConfig writes a minimal config rooted at dir.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	return testutil.WriteFile(t, dir, filepath.Join(".jeeval", "config.yml"), "version: 1\noutput_dir: out\nhistory:\n  db_path: history.duckdb\n")
}

// runCLI runs a command and captures its output.
func runCLI(args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}
