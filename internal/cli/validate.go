package cli

import (
	"flag"
	"fmt"
	"io"

	"jeeval/internal/question"
	"jeeval/internal/runner"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .jeeval/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, 0, -1, stdout, stderr); !ok {
			return code
		}

		if _, err := loadConfig(*configPath); err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintln(stdout, "Config OK")

		failed := false
		for _, path := range flags.Args() {
			records, err := question.LoadRecords(path)
			if err == nil {
				err = runner.Validate(records)
			}
			if err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
				failed = true
				continue
			}
			fmt.Fprintf(stdout, "%s: %d records OK\n", path, len(records))
		}
		if failed {
			return ExitError
		}
		return ExitOK
	}
}
