package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"jeeval/internal/ui/browse"
)

// runBrowseProgram is a test seam for the interactive viewer.
var runBrowseProgram = browse.Run

// browseInput allows tests to override the viewer's input.
var browseInput io.Reader = os.Stdin

// runBrowse builds the handler for the browse command.
func runBrowse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .jeeval/config.yml)")
		rawMode := flags.String("ui", "auto", "auto|live|plain")
		noColor := flags.Bool("no-color", false, "Disable ANSI colors")
		if code, ok := parseFlags(cmd, flags, args, 1, 1, stdout, stderr); !ok {
			return code
		}

		mode, err := parseUIMode(*rawMode)
		if err != nil {
			fmt.Fprintln(stderr, err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		decision := decideViewer(mode, stdout)
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		results, err := loadGraded(flags.Arg(0), cfg.Grading.Reextract)
		if err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return ExitError
		}

		colorOff := *noColor || cfg.Report.NoColor || !decision.color
		if !decision.interactive {
			fmt.Fprint(stdout, browse.RenderStatic(results, colorOff))
			return ExitOK
		}
		if err := runBrowseProgram(results, browseInput, stdout, browse.Options{NoColor: colorOff}); err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
