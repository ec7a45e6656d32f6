// Package config loads the player configuration from YAML with an
// embedded fallback.
package config

import (
	_ "embed"
)

//go:embed defaults/gridlock.yaml
var defaultYAML []byte

// Config holds player-facing settings.
type Config struct {
	// CellSize is the pixel size of one grid cell, used to snap pointer
	// deltas to grid translations.
	CellSize int `yaml:"cell_size"`
	// LevelsDir is an optional directory of extra level files; the
	// embedded set is always available.
	LevelsDir string `yaml:"levels_dir"`
	// DBPath is the progress database location.
	DBPath string `yaml:"db_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CellSize: 40,
		DBPath:   "~/.gridlock/progress.db",
	}
}
