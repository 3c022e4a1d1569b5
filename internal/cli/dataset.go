package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jeeval/internal/config"
	"jeeval/internal/dataset"
	"jeeval/internal/prompt"
	"jeeval/internal/question"
)

// datasetPath picks the --dataset flag over the configured dataset.
func datasetPath(flagValue string, cfg config.Config) (string, error) {
	if value := strings.TrimSpace(flagValue); value != "" {
		return value, nil
	}
	if cfg.Dataset.Path != "" {
		return cfg.Dataset.Path, nil
	}
	return "", fmt.Errorf("no dataset: pass --dataset or set dataset.path in the config")
}

// runRepatch builds the handler for the repatch command.
func runRepatch(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .jeeval/config.yml)")
		datasetFlag := flags.String("dataset", "", "Question bank CSV (default: dataset.path from the config)")
		if code, ok := parseFlags(cmd, flags, args, 1, -1, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		path, err := datasetPath(*datasetFlag, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Repatch failed: %v\n", err)
			return ExitUsage
		}
		rows, err := dataset.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "Repatch failed: %v\n", err)
			return ExitError
		}
		answers := dataset.AnswerKey(rows)
		for _, resultsPath := range flags.Args() {
			changed, err := dataset.Repatch(resultsPath, answers)
			if err != nil {
				fmt.Fprintf(stderr, "Repatch failed: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Patched %s (%d answers changed)\n", resultsPath, changed)
		}
		return ExitOK
	}
}

// runPrompt builds the handler for the prompt command.
func runPrompt(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .jeeval/config.yml)")
		datasetFlag := flags.String("dataset", "", "Question bank CSV (default: dataset.path from the config)")
		templatesDir := flags.String("templates", "", "Directory with <type>.tmpl overrides (default: prompts.dir from the config)")
		subject := flags.String("subject", "", "Render only this subject")
		num := flags.Int("num", 0, "Render only this question number (requires --subject)")
		if code, ok := parseFlags(cmd, flags, args, 0, 0, stdout, stderr); !ok {
			return code
		}
		if *num != 0 && strings.TrimSpace(*subject) == "" {
			fmt.Fprintln(stderr, "--num requires --subject")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		path, err := datasetPath(*datasetFlag, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Prompt failed: %v\n", err)
			return ExitUsage
		}
		rows, err := dataset.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "Prompt failed: %v\n", err)
			return ExitError
		}

		overrides := strings.TrimSpace(*templatesDir)
		if overrides == "" {
			overrides = cfg.Prompts.Dir
		}
		imageBase := cfg.Dataset.ImageDir
		if imageBase == "" {
			imageBase = filepath.Dir(path)
		}
		renderer, err := prompt.NewRenderer(overrides, imageBase)
		if err != nil {
			fmt.Fprintf(stderr, "Prompt failed: %v\n", err)
			return ExitError
		}

		selected := rows
		if value := strings.TrimSpace(*subject); value != "" {
			parsed, err := question.ParseSubject(value)
			if err != nil {
				fmt.Fprintf(stderr, "Prompt failed: %v\n", err)
				return ExitUsage
			}
			selected = nil
			for _, row := range rows {
				if row.Subject == string(parsed) && (*num == 0 || row.Num == *num) {
					selected = append(selected, row)
				}
			}
			if len(selected) == 0 {
				fmt.Fprintf(stderr, "Prompt failed: no %s question %d in %s\n", parsed, *num, path)
				return ExitError
			}
		}

		for i, row := range selected {
			rendered, err := renderer.Render(row)
			if err != nil {
				fmt.Fprintf(stderr, "Prompt failed: %v\n", err)
				return ExitError
			}
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "=== %s (%s)\n%s\n", row.Label(), row.Type, rendered.Text)
			for _, image := range rendered.Images {
				fmt.Fprintf(stdout, "image: %s\n", image)
			}
		}
		return ExitOK
	}
}
