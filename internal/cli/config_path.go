package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"jeeval/internal/config"
)

// loadConfig loads an explicit config, the nearest one above the working
// directory, or the defaults when none exists.
func loadConfig(configPath string) (config.Config, error) {
	path := strings.TrimSpace(configPath)
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = abs
	}
	cfg, _, err := config.Resolve("", path)
	return cfg, err
}
