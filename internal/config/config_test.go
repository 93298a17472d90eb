package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicoberrocal/pokecalc/gen"
)

func TestLoadWithEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := defaults()
	if cfg != want {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadMissingFileIsAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pokecalc.yaml")
	content := "default_generation: 6\nlog_level: debug\nfixture_workers: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultGeneration != gen.Gen6 {
		t.Errorf("expected DefaultGeneration Gen6, got %v", cfg.DefaultGeneration)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel debug, got %q", cfg.LogLevel)
	}
	if cfg.FixtureWorkers != 2 {
		t.Errorf("expected FixtureWorkers 2, got %d", cfg.FixtureWorkers)
	}
	// Untouched fields keep their default.
	if cfg.CodegenInputDir != defaults().CodegenInputDir {
		t.Errorf("expected CodegenInputDir to keep its default, got %q", cfg.CodegenInputDir)
	}
}

func TestParseGenerationRejectsOutOfRange(t *testing.T) {
	if _, err := parseGeneration(0); err == nil {
		t.Errorf("expected an error for generation 0")
	}
	if _, err := parseGeneration(10); err == nil {
		t.Errorf("expected an error for generation 10")
	}
	g, err := parseGeneration(9)
	if err != nil || g != gen.Gen9 {
		t.Errorf("parseGeneration(9) = %v, %v, want Gen9, nil", g, err)
	}
}
