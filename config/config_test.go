package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analyze.Depth != "deep" {
		t.Errorf("default depth = %q, want deep", cfg.Analyze.Depth)
	}
	if cfg.Analyze.Workers < 1 {
		t.Errorf("default workers = %d, want >= 1", cfg.Analyze.Workers)
	}
	if len(cfg.Analyze.Includes) == 0 {
		t.Error("default includes is empty")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Analyze.Depth != "deep" {
		t.Errorf("depth = %q, want deep", cfg.Analyze.Depth)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codegraph.yaml")
	data := []byte("analyze:\n  depth: surface\n  workers: 8\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Analyze.Depth != "surface" {
		t.Errorf("depth = %q, want surface", cfg.Analyze.Depth)
	}
	if cfg.Analyze.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Analyze.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Analyze.Excludes) == 0 {
		t.Error("excludes lost default value")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codegraph.yaml")

	cfg := DefaultConfig()
	cfg.Analyze.Depth = "surface"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if loaded.Analyze.Depth != "surface" {
		t.Errorf("depth = %q, want surface", loaded.Analyze.Depth)
	}
}

func TestAnalysisDBPath(t *testing.T) {
	got := AnalysisDBPath("/tmp/proj")
	want := filepath.Join("/tmp/proj", ".codegraph", "analysis.db")
	if got != want {
		t.Errorf("AnalysisDBPath = %q, want %q", got, want)
	}
}
