package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jeeval/internal/question"
	"jeeval/internal/report"
	"jeeval/internal/runlog"
	"jeeval/internal/runner"
)

// runEval builds the handler for the eval command.
func runEval(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .jeeval/config.yml)")
		reextract := flags.Bool("reextract", false, "Re-extract every prediction from the raw response")
		write := flags.Bool("write", false, "Write results.json and report.html to the output directory")
		outputDir := flags.String("output-dir", "", "Override output directory (implies --write)")
		logPath := flags.String("log", "", "Append timestamped logs to a file")
		verbose := flags.Bool("verbose", false, "Log progress to stderr")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		if code, ok := parseFlags(cmd, flags, args, 1, 1, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}

		var logWriters []io.Writer
		if *verbose {
			logWriters = append(logWriters, stderr)
		}
		if strings.TrimSpace(*logPath) != "" {
			logFile, err := openLogFile(*logPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
				return ExitError
			}
			defer func() { _ = logFile.Close() }()
			logWriters = append(logWriters, logFile)
		}
		logger := runlog.New(logWriters...)

		inputPath := flags.Arg(0)
		records, err := question.LoadRecords(inputPath)
		if err != nil {
			logger.Errorf("load %s: %v", inputPath, err)
			fmt.Fprintf(stderr, "Eval failed: %v\n", err)
			return ExitError
		}
		logger.Infof("Loaded %d records from %s", len(records), inputPath)

		opts := report.ConsoleOptions{NoColor: *noColor || cfg.Report.NoColor}
		var out bytes.Buffer
		diagnostics := report.NewDiagnosticObserver(&out, opts).WithLogger(logger)
		results, err := runner.Grade(records, runner.Params{
			Source:    filepath.Base(inputPath),
			Reextract: *reextract || cfg.Grading.Reextract,
			Observer:  diagnostics,
		})
		if err == nil {
			err = diagnostics.Err()
		}
		if err != nil {
			logger.Errorf("grade %s: %v", inputPath, err)
			fmt.Fprintf(stderr, "Eval failed: %v\n", err)
			return ExitError
		}
		if err := report.WriteConsole(&out, results.Summary, opts); err != nil {
			logger.Errorf("report %s: %v", inputPath, err)
			fmt.Fprintf(stderr, "Eval failed: %v\n", err)
			return ExitError
		}
		logger.Infof("Graded run %s: %d/%d", results.RunID, results.Summary.TotalScore, results.Summary.TotalMaxScore)

		targetDir := strings.TrimSpace(*outputDir)
		if targetDir == "" && *write {
			targetDir = cfg.OutputDir
		}
		if targetDir != "" {
			paths, err := runner.WriteRunOutputs(context.Background(), results, targetDir, report.RenderHTML)
			if err != nil {
				logger.Errorf("write outputs: %v", err)
				fmt.Fprintf(stderr, "Eval failed: %v\n", err)
				return ExitError
			}
			logger.Infof("Wrote %s", paths.RunDir())
			fmt.Fprintf(&out, "\nResults: %s\n", paths.ResultsPath())
			fmt.Fprintf(&out, "Report: %s\n", paths.ReportPath())
		}

		if _, err := stdout.Write(out.Bytes()); err != nil {
			return ExitError
		}
		return ExitOK
	}
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
