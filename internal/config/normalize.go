package config

import "strings"

// Normalize trims values and anchors relative paths at the project root.
func Normalize(cfg *Config, root string) {
	cfg.OutputDir = resolvePath(root, cfg.OutputDir)
	cfg.Dataset.Path = resolvePath(root, cfg.Dataset.Path)
	cfg.Dataset.ImageDir = resolvePath(root, cfg.Dataset.ImageDir)
	cfg.Prompts.Dir = resolvePath(root, cfg.Prompts.Dir)
	cfg.History.DBPath = resolvePath(root, cfg.History.DBPath)
	for i := range cfg.Models {
		cfg.Models[i].ID = strings.TrimSpace(cfg.Models[i].ID)
	}
}
