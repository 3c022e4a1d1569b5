package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const scaffoldTemplate = `version: 1
output_dir: "{{OUTPUT_DIR}}"

grading:
  reextract: false

report:
  no_color: false

# dataset:
#   path: "dataset/jeea25_p2.csv"
#   image_dir: "dataset/images"

history:
  db_path: "{{HISTORY_DB}}"

models:
  - id: o4-mini
    input_per_million: 1.1
    output_per_million: 4.4
  - id: gpt-4o
    input_per_million: 2.5
    output_per_million: 10
  - id: o3
    input_per_million: 10
    output_per_million: 40
`

// RenderScaffold returns the starter config text.
func RenderScaffold(outputDir string) string {
	if strings.TrimSpace(outputDir) == "" {
		outputDir = DefaultOutputDir
	}
	replacer := strings.NewReplacer("{{OUTPUT_DIR}}", outputDir, "{{HISTORY_DB}}", DefaultHistoryDB)
	return replacer.Replace(scaffoldTemplate)
}

// Scaffold writes a starter config file, refusing to overwrite one.
func Scaffold(configPath, outputDir string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(RenderScaffold(outputDir)), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
