package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A jeeval project keeps its config, default results folder and history
// database together under <root>/.jeeval.
const (
	ConfigDirName    = ".jeeval"
	ConfigFileName   = "config.yml"
	DefaultOutputDir = ConfigDirName + "/results"
	DefaultHistoryDB = ConfigDirName + "/history.duckdb"
)

// ErrConfigNotFound means no .jeeval/config.yml exists at or above the start directory.
var ErrConfigNotFound = errors.New("config not found")

// ConfigPath returns <root>/.jeeval/config.yml.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDirName, ConfigFileName)
}

// RootFromConfigPath returns the project root that relative config paths
// (output_dir, dataset.path, history.db_path) are anchored to. A config
// outside a .jeeval directory is anchored to its own directory.
func RootFromConfigPath(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) != ConfigDirName {
		return dir
	}
	return filepath.Dir(dir)
}

// FindConfigPath returns the nearest project config at or above startDir,
// which defaults to the working directory.
func FindConfigPath(startDir string) (string, error) {
	start := strings.TrimSpace(startDir)
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for dir := start; ; dir = filepath.Dir(dir) {
		path, found, err := projectConfig(dir)
		if err != nil || found {
			return path, err
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent", ErrConfigNotFound, filepath.Join(ConfigDirName, ConfigFileName), start)
		}
	}
}

// projectConfig reports whether dir holds a project config file.
func projectConfig(dir string) (string, bool, error) {
	path := ConfigPath(dir)
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	case info.IsDir():
		return "", false, fmt.Errorf("config path %q is a directory", path)
	}
	return path, true, nil
}
