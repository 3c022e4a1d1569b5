package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"jeeval/internal/config"
	"jeeval/internal/duckdb"
)

// historyDBPath picks the --db flag over the configured history database.
func historyDBPath(flagValue string, cfg config.Config) string {
	if value := strings.TrimSpace(flagValue); value != "" {
		return value
	}
	return cfg.History.DBPath
}

// runIngest builds the handler for the ingest command.
func runIngest(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .jeeval/config.yml)")
		dbPath := flags.String("db", "", "History database (default: history.db_path from the config)")
		if code, ok := parseFlags(cmd, flags, args, 1, -1, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		path := historyDBPath(*dbPath, cfg)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
				return ExitError
			}
		}
		db, err := duckdb.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
			return ExitError
		}
		defer db.Close()

		ctx := context.Background()
		for _, resultsPath := range flags.Args() {
			results, err := loadGraded(resultsPath, cfg.Grading.Reextract)
			if err != nil {
				fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
				return ExitError
			}
			if err := duckdb.IngestRun(ctx, db, results); err != nil {
				fmt.Fprintf(stderr, "Ingest failed: %s: %v\n", resultsPath, err)
				return ExitError
			}
			fmt.Fprintf(stdout, "Ingested %s as run %s (%d questions)\n", resultsPath, results.RunID, len(results.Questions))
		}
		return ExitOK
	}
}

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := flags.String("config", "", "Path to config file (default: search for .jeeval/config.yml)")
		dbPath := flags.String("db", "", "History database (default: history.db_path from the config)")
		limit := flags.Int("limit", 20, "Maximum runs to list (0 for all)")
		if code, ok := parseFlags(cmd, flags, args, 0, 0, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		path := historyDBPath(*dbPath, cfg)
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		db, err := duckdb.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		defer db.Close()

		runs, err := duckdb.RunHistory(context.Background(), db, *limit)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		if len(runs) == 0 {
			fmt.Fprintln(stdout, "No runs ingested.")
			return ExitOK
		}
		writer := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(writer, "RUN\tGRADED AT\tSCORE\tCORRECT\tINCORRECT\tTOKENS\tSOURCE")
		for _, run := range runs {
			fmt.Fprintf(writer, "%s\t%s\t%d/%d\t%d\t%d\t%d\t%s\n",
				run.RunID,
				run.GradedAt.UTC().Format("2006-01-02 15:04:05"),
				run.TotalScore, run.TotalMaxScore,
				run.CorrectCount, run.IncorrectCount,
				run.InputTokens+run.OutputTokens,
				run.Source,
			)
		}
		if err := writer.Flush(); err != nil {
			return ExitError
		}
		return ExitOK
	}
}
