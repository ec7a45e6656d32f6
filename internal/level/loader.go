package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader loads levels from a directory tree, falling back to the
// embedded default set when no directory is configured.
type Loader struct {
	Root string // empty means embedded levels only
}

// NewLoader creates a loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll returns every level, sorted by ID for deterministic
// ordering. Directory levels shadow embedded levels with the same ID.
func (l *Loader) LoadAll() ([]Level, error) {
	byID := make(map[string]Level)
	for _, lvl := range embeddedLevels() {
		byID[lvl.ID] = lvl
	}

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isLevelFile(path) {
				return nil
			}
			lvl, loadErr := l.LoadFile(path)
			if loadErr != nil {
				// Skip invalid files; check command reports them.
				return nil
			}
			byID[lvl.ID] = lvl
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("level: walking %s: %w", l.Root, err)
		}
	}

	levels := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("level: reading %s: %w", path, err)
	}
	lvl, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("level: parsing %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadByID returns the level with the given ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level: not found: %s", id)
}

// Packs returns the distinct pack names over all levels, sorted.
func (l *Loader) Packs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var packs []string
	for _, lvl := range levels {
		if !seen[lvl.Pack()] {
			seen[lvl.Pack()] = true
			packs = append(packs, lvl.Pack())
		}
	}
	sort.Strings(packs)
	return packs, nil
}

func isLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
