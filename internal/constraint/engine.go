// Package constraint implements the legality rules a puzzle
// configuration must satisfy: cluster connectivity (glue), reflective
// symmetry (mirror/symmetry), face-adjacency matching (pyramid), and
// sea connectivity over a mixed-topology node graph (sail).
//
// The engine is a pure evaluator: it reads the grid and holds no
// mutable state, so it can be shared freely.
package constraint

import (
	"github.com/vovakirdan/tui-gridlock/internal/grid"
)

// Phase selects which checks are active and how strictly missing
// neighbors are treated.
type Phase int

const (
	// PhaseSelection runs when the player confirms a cluster.
	PhaseSelection Phase = iota
	// PhaseMovement runs when a moved cluster is dropped.
	PhaseMovement
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseSelection {
		return "selection"
	}
	return "movement"
}

// Constraint identifiers understood by the engine. Unknown names
// evaluate to a vacuous pass so level files can carry forward-looking
// identifiers without breaking older engines.
const (
	NameGlue     = "glue"
	NameMirror   = "mirror"
	NameSymmetry = "symmetry" // alias of mirror
	NamePyramid  = "pyramid"
	NameSail     = "sail"
)

// Known reports whether the engine implements the named constraint.
func Known(name string) bool {
	switch name {
	case NameGlue, NameMirror, NameSymmetry, NamePyramid, NameSail:
		return true
	}
	return false
}

// Evaluate checks every requested constraint against the grid at the
// given phase and returns a per-name pass/fail map. Constraints that
// are inactive at the phase pass unconditionally.
func Evaluate(g *grid.Grid, names []string, phase Phase) map[string]bool {
	results := make(map[string]bool, len(names))
	for _, name := range names {
		results[name] = evaluateOne(g, name, phase)
	}
	return results
}

// Failing returns the names that did not pass, in the order requested.
func Failing(g *grid.Grid, names []string, phase Phase) []string {
	results := Evaluate(g, names, phase)
	var failed []string
	for _, name := range names {
		if !results[name] {
			failed = append(failed, name)
		}
	}
	return failed
}

func evaluateOne(g *grid.Grid, name string, phase Phase) bool {
	switch name {
	case NameGlue:
		if phase == PhaseMovement {
			return true
		}
		return checkGlue(g)
	case NameMirror, NameSymmetry:
		if phase == PhaseSelection {
			return true
		}
		return checkMirror(g)
	case NamePyramid:
		if phase == PhaseSelection {
			return checkPyramidSelection(g)
		}
		return checkPyramidMovement(g)
	case NameSail:
		if phase == PhaseSelection {
			return true
		}
		return checkSail(g)
	default:
		// Unknown constraint names pass vacuously.
		return true
	}
}

// checkGlue requires a non-empty, 4-connected selection.
func checkGlue(g *grid.Grid) bool {
	if g.SelectionCount() == 0 {
		return false
	}
	return g.SelectionConnected()
}
