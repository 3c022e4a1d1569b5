package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/cucumber/godog"

	"jeeval/internal/question"
	"jeeval/internal/runner"
	"jeeval/internal/scoring"
)

type featureState struct {
	workDir    string
	previousWD string

	extracted question.Prediction
	result    scoring.Result
	gradeErr  error

	records      []question.Record
	summary      runner.Summary
	diagnostics  []runner.Diagnostic
	aggregateErr error

	stdout   bytes.Buffer
	stderr   bytes.Buffer
	exitCode int
}

// InitializeScenario registers the step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^I extract the answer from "((?:[^"\\]|\\.)*)"$`, state.iExtractTheAnswerFrom)
	ctx.Step(`^the extracted answer is "([^"]*)"$`, state.theExtractedAnswerIs)
	ctx.Step(`^no answer is extracted$`, state.noAnswerIsExtracted)

	ctx.Step(`^I grade the prediction "([^"]*)" against gold "([^"]*)" for an? "([^"]*)" question$`, state.iGradeThePrediction)
	ctx.Step(`^I grade no prediction against gold "([^"]*)" for an? "([^"]*)" question$`, state.iGradeNoPrediction)
	ctx.Step(`^the score is (-?\d+)$`, state.theScoreIs)
	ctx.Step(`^the question counts as (correct|incorrect)$`, state.theQuestionCountsAs)
	ctx.Step(`^grading fails with an? (malformed gold|malformed prediction|unknown question type) error$`, state.gradingFailsWith)

	ctx.Step(`^these answers:$`, state.theseAnswers)
	ctx.Step(`^I aggregate them$`, state.iAggregateThem)
	ctx.Step(`^I aggregate them in reverse order$`, state.iAggregateThemInReverseOrder)
	ctx.Step(`^the total score is "(\d+/\d+)"$`, state.theTotalScoreIs)
	ctx.Step(`^the "([^"]*)" score is (-?\d+)$`, state.theSubjectScoreIs)
	ctx.Step(`^(\d+) (?:diagnostic is|diagnostics are) reported$`, state.diagnosticsAreReported)
	ctx.Step(`^the average output tokens for (correct|incorrect) answers is ([\d.]+)$`, state.theAverageOutputTokensIs)
	ctx.Step(`^the average output tokens for (correct|incorrect) answers is undefined$`, state.theAverageIsUndefined)

	ctx.Step(`^a results file "([^"]*)" containing:$`, state.aResultsFileContaining)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the output is empty$`, state.theOutputIsEmpty)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.theErrorOutputContains)
}

func (s *featureState) reset() {
	s.extracted = question.Prediction{}
	s.result = scoring.Result{}
	s.gradeErr = nil
	s.records = nil
	s.summary = runner.Summary{}
	s.diagnostics = nil
	s.aggregateErr = nil
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
		s.workDir = ""
	}
}

// ensureWorkDir moves the scenario into a fresh temporary directory.
func (s *featureState) ensureWorkDir() error {
	if s.workDir != "" {
		return nil
	}
	dir, err := os.MkdirTemp("", "jeeval-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.workDir = dir
	s.previousWD = wd
	return nil
}
