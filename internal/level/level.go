// Package level provides the level data model: grid extent, movement
// margins, the required constraint list, and the initial cell layout.
// Levels are validated at load time; the engine assumes their
// invariants hold afterwards.
package level

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-gridlock/internal/constraint"
	"github.com/vovakirdan/tui-gridlock/internal/core"
	"github.com/vovakirdan/tui-gridlock/internal/grid"
)

// Margins are the blank borders around the playfield a cluster may
// move into. Legal x positions span [-Left, Width-Right), legal y
// positions [-Top, Height-Bottom).
type Margins struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
}

// CellSpec describes one initial cell, position relative to the level
// anchor.
type CellSpec struct {
	Kind  core.Kind
	Pos   core.Coord
	Faces core.Faces // pyramids only
}

// Level is a complete, validated level definition.
type Level struct {
	ID          string
	Name        string
	Instruction string
	Width       int
	Height      int
	Margins     Margins
	Constraints []string
	Cells       []CellSpec
	FilePath    string // empty for embedded levels
}

// Pack returns the pack component of a "pack-level" ID, or the whole
// ID when there is no separator.
func (l *Level) Pack() string {
	if i := strings.IndexByte(l.ID, '-'); i > 0 {
		return l.ID[:i]
	}
	return l.ID
}

// NewGrid builds a fresh grid populated with this level's cells.
// Called on every (re)load so each session owns independent cells.
func (l *Level) NewGrid() *grid.Grid {
	g := grid.New()
	for _, spec := range l.Cells {
		if spec.Kind == core.KindPyramid {
			g.Add(core.NewPyramid(spec.Pos, spec.Faces))
		} else {
			g.Add(core.NewSolid(spec.Kind, spec.Pos))
		}
	}
	return g
}

// Validate checks the level invariants the engine relies on: positive
// extent, non-negative margins, unique cell positions, known cell
// kinds, and cells within the playfield. Constraint names are allowed
// to be unknown (they pass vacuously) but empty names are rejected.
func (l *Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("level: missing id")
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level %s: extent must be positive, got %dx%d", l.ID, l.Width, l.Height)
	}
	if l.Margins.Top < 0 || l.Margins.Bottom < 0 || l.Margins.Left < 0 || l.Margins.Right < 0 {
		return fmt.Errorf("level %s: negative margin", l.ID)
	}
	seen := make(map[core.Coord]bool, len(l.Cells))
	for i, spec := range l.Cells {
		switch spec.Kind {
		case core.KindDark, core.KindSea, core.KindPyramid:
		default:
			return fmt.Errorf("level %s: cell %d has unknown kind %d", l.ID, i, spec.Kind)
		}
		if seen[spec.Pos] {
			return fmt.Errorf("level %s: duplicate cell position (%d,%d)", l.ID, spec.Pos.X, spec.Pos.Y)
		}
		seen[spec.Pos] = true
		if spec.Pos.X < 0 || spec.Pos.X >= l.Width || spec.Pos.Y < 0 || spec.Pos.Y >= l.Height {
			return fmt.Errorf("level %s: cell %d at (%d,%d) outside %dx%d playfield",
				l.ID, i, spec.Pos.X, spec.Pos.Y, l.Width, l.Height)
		}
	}
	for _, name := range l.Constraints {
		if name == "" {
			return fmt.Errorf("level %s: empty constraint name", l.ID)
		}
		if !constraint.Known(name) {
			// Unknown names are tolerated at runtime; surface them at
			// validation so authors catch typos early.
			return fmt.Errorf("level %s: unknown constraint %q", l.ID, name)
		}
	}
	return nil
}
