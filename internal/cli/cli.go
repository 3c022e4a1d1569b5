package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  jeeval <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"jeeval <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// parseFlags parses args into flags and checks the positional argument count.
// maxArgs < 0 means unbounded. When ok is false the caller returns code.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, minArgs, maxArgs int, stdout, stderr io.Writer) (code int, ok bool) {
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	count := flags.NArg()
	if count < minArgs {
		fmt.Fprintln(stderr, "missing arguments")
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if maxArgs >= 0 && count > maxArgs {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[maxArgs:], " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .jeeval/config.yml", []string{
		"jeeval init [--config <path>]",
	}, runInit),
	command("validate", "Validate the config and results files", []string{
		"jeeval validate [--config <path>] [results.json]...",
	}, runValidate),
	command("eval", "Grade a results file and print the report", []string{
		"jeeval eval [--config <path>] [--reextract] [--write] [--output-dir <dir>] [--log <path>] [--verbose] [--no-color] <results.json>",
	}, runEval),
	command("cost", "Show token usage and spend for a results file", []string{
		"jeeval cost [--config <path>] [--model <id>] <results.json>",
	}, runCost),
	command("duration", "Show the elapsed time covered by a run log", []string{
		"jeeval duration <run.log>",
	}, runDuration),
	command("repatch", "Replace gold answers in results files from the dataset", []string{
		"jeeval repatch [--config <path>] [--dataset <csv>] <results.json>...",
	}, runRepatch),
	command("prompt", "Render question prompts from the dataset", []string{
		"jeeval prompt [--config <path>] [--dataset <csv>] [--templates <dir>] [--subject <name> --num <n>]",
	}, runPrompt),
	command("browse", "Browse graded questions interactively", []string{
		"jeeval browse [--config <path>] [--ui auto|live|plain] [--no-color] <results.json>",
	}, runBrowse),
	command("ingest", "Store graded runs in the history database", []string{
		"jeeval ingest [--config <path>] [--db <path>] <results.json>...",
	}, runIngest),
	command("history", "List graded runs from the history database", []string{
		"jeeval history [--config <path>] [--db <path>] [--limit <n>]",
	}, runHistory),
}
