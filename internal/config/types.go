package config

import "jeeval/internal/cost"

// Config is the parsed .jeeval/config.yml.
type Config struct {
	Version   int           `yaml:"version"`
	OutputDir string        `yaml:"output_dir"`
	Grading   GradingConfig `yaml:"grading"`
	Report    ReportConfig  `yaml:"report"`
	Dataset   DatasetConfig `yaml:"dataset"`
	Prompts   PromptsConfig `yaml:"prompts"`
	History   HistoryConfig `yaml:"history"`
	Models    []cost.Model  `yaml:"models"`
}

type GradingConfig struct {
	Reextract bool `yaml:"reextract"`
}

type ReportConfig struct {
	NoColor bool `yaml:"no_color"`
}

// DatasetConfig points at the question bank CSV and its images.
type DatasetConfig struct {
	Path     string `yaml:"path"`
	ImageDir string `yaml:"image_dir"`
}

// PromptsConfig holds optional per-type template overrides.
type PromptsConfig struct {
	Dir string `yaml:"dir"`
}

// HistoryConfig locates the DuckDB run history.
type HistoryConfig struct {
	DBPath string `yaml:"db_path"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Version:   1,
		OutputDir: DefaultOutputDir,
		History:   HistoryConfig{DBPath: DefaultHistoryDB},
		Models:    cost.DefaultModels(),
	}
}
