package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks a normalized config and the files it references.
func Validate(cfg *Config) error {
	collector := &issueCollector{}
	add := collector.add

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		add("output_dir", "is required")
	}

	if cfg.Dataset.Path != "" {
		requireFile(add, "dataset.path", cfg.Dataset.Path, false)
	}
	if cfg.Dataset.ImageDir != "" {
		requireFile(add, "dataset.image_dir", cfg.Dataset.ImageDir, true)
	}
	if cfg.Prompts.Dir != "" {
		requireFile(add, "prompts.dir", cfg.Prompts.Dir, true)
	}
	if strings.TrimSpace(cfg.History.DBPath) == "" {
		add("history.db_path", "is required")
	}

	validateModels(cfg, add)
	return collector.result()
}

func validateModels(cfg *Config, add func(field, message string)) {
	if len(cfg.Models) == 0 {
		add("models", "at least one model is required")
	}
	seen := map[string]struct{}{}
	for i, model := range cfg.Models {
		prefix := fmt.Sprintf("models[%d]", i)
		if model.ID == "" {
			add(prefix+".id", "is required")
		} else if _, ok := seen[model.ID]; ok {
			add("models.id", fmt.Sprintf("duplicate id %q", model.ID))
		} else {
			seen[model.ID] = struct{}{}
		}
		if model.InputPerMillion < 0 {
			add(prefix+".input_per_million", "must be >= 0")
		}
		if model.OutputPerMillion < 0 {
			add(prefix+".output_per_million", "must be >= 0")
		}
	}
}

func requireFile(add func(field, message string), field, path string, wantDir bool) {
	info, err := os.Stat(path)
	if err != nil {
		add(field, fmt.Sprintf("cannot access %q: %v", path, err))
		return
	}
	if wantDir && !info.IsDir() {
		add(field, fmt.Sprintf("%q is not a directory", path))
	}
	if !wantDir && info.IsDir() {
		add(field, fmt.Sprintf("%q is a directory", path))
	}
}
