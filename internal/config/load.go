package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	root := RootFromConfigPath(path)
	Normalize(&cfg, root)
	if err := Validate(&cfg); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			validationErr.Path = path
		}
		return Config{}, err
	}
	return cfg, nil
}

// Resolve loads the explicit config path when given, otherwise the nearest
// config above startDir. Without any config file the defaults apply, rooted
// at startDir. The returned string is the config path, or empty for defaults.
func Resolve(startDir, explicitPath string) (Config, string, error) {
	if path := strings.TrimSpace(explicitPath); path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	path, err := FindConfigPath(startDir)
	if errors.Is(err, ErrConfigNotFound) {
		root := startDir
		if strings.TrimSpace(root) == "" {
			if root, err = os.Getwd(); err != nil {
				return Config{}, "", fmt.Errorf("get working directory: %w", err)
			}
		}
		cfg := Default()
		Normalize(&cfg, root)
		return cfg, "", nil
	}
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// resolvePath anchors a relative path at root.
func resolvePath(root, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}
