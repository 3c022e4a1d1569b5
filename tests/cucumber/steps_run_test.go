package cucumber

import (
	"fmt"
	"os"
	"strings"

	"github.com/cucumber/godog"

	"jeeval/internal/cli"
)

// aResultsFileContaining writes a results file into the scenario directory.
func (s *featureState) aResultsFileContaining(name string, body *godog.DocString) error {
	if err := s.ensureWorkDir(); err != nil {
		return err
	}
	if err := os.WriteFile(name, []byte(body.Content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	if err := s.ensureWorkDir(); err != nil {
		return err
	}
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "jeeval" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIs(expected int) error {
	if s.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %q)", expected, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output:\n%s", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputIsEmpty() error {
	if s.stdout.Len() != 0 {
		return fmt.Errorf("expected no output, got %q", s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}
