package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, root, payload string) string {
	t.Helper()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestParseAppliesDefaults verifies omitted sections keep default values.
func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\ngrading:\n  reextract: true\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !cfg.Grading.Reextract {
		t.Fatalf("expected reextract to be set")
	}
	if cfg.OutputDir != DefaultOutputDir || len(cfg.Models) != 3 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

// TestParseReplacesModels verifies a models list replaces the default prices.
func TestParseReplacesModels(t *testing.T) {
	cfg, err := Parse([]byte("models:\n  - id: o3\n    input_per_million: 2\n    output_per_million: 8\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cfg.Models) != 1 || cfg.Models[0].OutputPerMillion != 8 {
		t.Fatalf("unexpected models: %+v", cfg.Models)
	}
}

// TestParseRejectsUnknownFieldsAndDocuments verifies strict decoding.
func TestParseRejectsUnknownFieldsAndDocuments(t *testing.T) {
	if _, err := Parse([]byte("version: 1\nagents: []\n")); err == nil {
		t.Fatalf("expected unknown field error")
	}
	if _, err := Parse([]byte("version: 1\n---\nversion: 1\n")); err == nil || !strings.Contains(err.Error(), "multiple YAML documents") {
		t.Fatalf("expected multiple document error, got %v", err)
	}
}

// TestLoadAnchorsRelativePaths verifies paths resolve against the project root.
func TestLoadAnchorsRelativePaths(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "dataset", "images"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "dataset", "p2.csv"), []byte("num\n"), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	path := writeConfig(t, root, "version: 1\noutput_dir: out\ndataset:\n  path: dataset/p2.csv\n  image_dir: dataset/images\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != filepath.Join(root, "out") {
		t.Fatalf("unexpected output dir: %s", cfg.OutputDir)
	}
	if cfg.Dataset.Path != filepath.Join(root, "dataset", "p2.csv") {
		t.Fatalf("unexpected dataset path: %s", cfg.Dataset.Path)
	}
	if cfg.History.DBPath != filepath.Join(root, DefaultHistoryDB) {
		t.Fatalf("unexpected history path: %s", cfg.History.DBPath)
	}
}

// TestValidateCollectsIssues verifies every problem is reported.
func TestValidateCollectsIssues(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `version: 2
output_dir: ""
dataset:
  path: missing.csv
models:
  - id: o3
    input_per_million: -1
  - id: o3
`)
	_, err := Load(path)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"version", "output_dir", "dataset.path", "models[0].input_per_million", "models.id"} {
		if _, ok := validationErr.Field(field); !ok {
			t.Fatalf("expected issue for %s, got %v", field, validationErr.Issues)
		}
	}
	if validationErr.Path != path {
		t.Fatalf("expected path %s, got %q", path, validationErr.Path)
	}
	message := err.Error()
	if !strings.HasPrefix(message, path+": invalid config (") || !strings.Contains(message, "\n  version: ") {
		t.Fatalf("unexpected message:\n%s", message)
	}
}

// TestFindConfigPathSearchesParents verifies upward discovery.
func TestFindConfigPathSearchesParents(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "results", "p2")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	resolved, _ := filepath.EvalSymlinks(found)
	expected, _ := filepath.EvalSymlinks(path)
	if resolved != expected {
		t.Fatalf("expected %s, got %s", expected, found)
	}
	if RootFromConfigPath(found) != filepath.Dir(filepath.Dir(found)) {
		t.Fatalf("unexpected root for %s", found)
	}
}

// TestFindConfigPathErrors verifies a missing config and a directory in its place.
func TestFindConfigPathErrors(t *testing.T) {
	root := t.TempDir()
	if _, err := FindConfigPath(root); !errors.Is(err, ErrConfigNotFound) {
		t.Skipf("a parent of %s holds a config: %v", root, err)
	}
	if err := os.MkdirAll(ConfigPath(root), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, err := FindConfigPath(root)
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Fatalf("expected directory error, got %v", err)
	}
}

// TestRootFromConfigPath verifies configs outside .jeeval anchor to their own directory.
func TestRootFromConfigPath(t *testing.T) {
	if got := RootFromConfigPath(filepath.Join("proj", ".jeeval", "config.yml")); got != "proj" {
		t.Fatalf("unexpected root %q", got)
	}
	if got := RootFromConfigPath(filepath.Join("proj", "ci", "jeeval.yml")); got != filepath.Join("proj", "ci") {
		t.Fatalf("unexpected root %q", got)
	}
}

// TestResolveWithoutConfig verifies defaults apply when no file exists.
func TestResolveWithoutConfig(t *testing.T) {
	root := t.TempDir()
	cfg, path, err := Resolve(root, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if path != "" {
		t.Fatalf("expected no config path, got %s", path)
	}
	if cfg.OutputDir != filepath.Join(root, DefaultOutputDir) {
		t.Fatalf("unexpected output dir: %s", cfg.OutputDir)
	}
}

// TestScaffold verifies the starter config loads and is never overwritten.
func TestScaffold(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)
	if err := Scaffold(path, "results"); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load scaffold: %v", err)
	}
	if cfg.OutputDir != filepath.Join(root, "results") || len(cfg.Models) != 3 {
		t.Fatalf("unexpected scaffold config: %+v", cfg)
	}
	if err := Scaffold(path, "results"); err == nil {
		t.Fatalf("expected error when config exists")
	}
}
