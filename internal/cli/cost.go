package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"jeeval/internal/cost"
	"jeeval/internal/question"
	"jeeval/internal/runlog"
)

// runCost builds the handler for the cost command.
func runCost(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .jeeval/config.yml)")
		modelID := flags.String("model", "", "Model id to price (default: detect from the file name)")
		if code, ok := parseFlags(cmd, flags, args, 1, 1, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		path := flags.Arg(0)
		var model cost.Model
		if id := strings.TrimSpace(*modelID); id != "" {
			model, err = cost.FindModel(id, cfg.Models)
		} else {
			model, err = cost.DetectModel(path, cfg.Models)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Cost failed: %v\n", err)
			return ExitError
		}
		records, err := question.LoadRecords(path)
		if err != nil {
			fmt.Fprintf(stderr, "Cost failed: %v\n", err)
			return ExitError
		}
		if err := cost.Compute(records, model).Write(stdout); err != nil {
			return ExitError
		}
		return ExitOK
	}
}

// runDuration builds the handler for the duration command.
func runDuration(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		if code, ok := parseFlags(cmd, flags, args, 1, 1, stdout, stderr); !ok {
			return code
		}
		duration, err := runlog.Duration(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Duration failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, runlog.FormatDuration(duration))
		return ExitOK
	}
}
