package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := []byte("cell_size: 25\nlevels_dir: /tmp/levels\ndb_path: /tmp/p.db\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.CellSize != 25 {
		t.Errorf("CellSize = %d, want 25", cfg.CellSize)
	}
	if cfg.LevelsDir != "/tmp/levels" {
		t.Errorf("LevelsDir = %q, want /tmp/levels", cfg.LevelsDir)
	}
	if cfg.DBPath != "/tmp/p.db" {
		t.Errorf("DBPath = %q, want /tmp/p.db", cfg.DBPath)
	}
}

func TestLoadCustomPathMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("an explicit config path that does not exist must error")
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("levels_dir: /x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	def := Default()
	if cfg.CellSize != def.CellSize {
		t.Errorf("CellSize = %d, want default %d", cfg.CellSize, def.CellSize)
	}
	if cfg.DBPath != def.DBPath {
		t.Errorf("DBPath = %q, want default %q", cfg.DBPath, def.DBPath)
	}
	if cfg.LevelsDir != "/x" {
		t.Errorf("LevelsDir = %q, want /x", cfg.LevelsDir)
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	// No custom path and (very likely) no user config in a test
	// environment: the embedded YAML must produce a usable config.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.CellSize <= 0 {
		t.Errorf("CellSize = %d, want positive", cfg.CellSize)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath should never be empty")
	}
}
