// Package session drives one attempt at a level: selecting a cluster,
// confirming it, dragging it as a rigid body, and the final constraint
// verdict, with bounded undo/redo history throughout.
//
// Every operation runs to completion synchronously; a session is owned
// by a single caller and needs no locking.
package session

import (
	"github.com/vovakirdan/tui-gridlock/internal/constraint"
	"github.com/vovakirdan/tui-gridlock/internal/core"
	"github.com/vovakirdan/tui-gridlock/internal/grid"
	"github.com/vovakirdan/tui-gridlock/internal/level"
)

// State is the session's position in the solving protocol.
type State int

const (
	// StateSelecting accepts cell toggles until the cluster is confirmed.
	StateSelecting State = iota
	// StateMoving accepts drag operations on the confirmed cluster.
	StateMoving
	// StateSolved is terminal: all constraints passed after a drop.
	StateSolved
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateMoving:
		return "moving"
	case StateSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DefaultCellSize is the pixel size of one grid cell used for pointer
// snapping when the caller does not configure one.
const DefaultCellSize = 40

// Session is the puzzle-solving state machine for one loaded level.
// Operations invoked in a state that does not define them are no-ops;
// callers gate input by State().
type Session struct {
	lvl      level.Level
	grid     *grid.Grid
	cellSize int

	state     State
	confirmed bool
	failed    []string

	hist  *history
	drag  *dragContext
	muted bool // suppresses history snapshots during bulk restores

	solvedFns []func(levelID string)
}

// New builds a session around a fresh grid for the level. cellSize is
// the pixel size of one cell for pointer snapping; pass 0 for the
// default.
func New(lvl level.Level, cellSize int) *Session {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	s := &Session{
		lvl:      lvl,
		grid:     lvl.NewGrid(),
		cellSize: cellSize,
		hist:     newHistory(),
	}
	s.grid.OnSelectionChange(func() {
		if !s.muted {
			s.hist.Push(s.snapshot())
		}
	})
	return s
}

// OnSolved registers a handler fired exactly once when the session
// reaches StateSolved, carrying the level ID.
func (s *Session) OnSolved(fn func(levelID string)) {
	s.solvedFns = append(s.solvedFns, fn)
}

// Grid exposes the session's grid for read access (rendering, tests).
func (s *Session) Grid() *grid.Grid {
	return s.grid
}

// Level returns the loaded level definition.
func (s *Session) Level() level.Level {
	return s.lvl
}

// State returns the current protocol state.
func (s *Session) State() State {
	return s.state
}

// Solved reports whether the session reached the terminal state.
func (s *Session) Solved() bool {
	return s.state == StateSolved
}

// Confirmed reports whether the current selection has been confirmed.
func (s *Session) Confirmed() bool {
	return s.confirmed
}

// FailedConstraints returns the names that failed the most recent
// evaluation, empty when it passed or none has run.
func (s *Session) FailedConstraints() []string {
	return s.failed
}

// HistoryLen returns the number of stored history snapshots.
func (s *Session) HistoryLen() int {
	return s.hist.Len()
}

// ToggleCell flips the selection of the cell at pos. Valid only while
// selecting; returns true if a cell was toggled. The selection change
// snapshots history and clears any reported failures.
func (s *Session) ToggleCell(pos core.Coord) bool {
	if s.state != StateSelecting {
		return false
	}
	c := s.grid.CellAt(pos)
	if c == nil {
		return false
	}
	if c.Selected {
		s.grid.Deselect(c)
	} else {
		s.grid.Select(c)
	}
	s.failed = nil
	return true
}

// SelectRegion selects every cell in the rectangle spanned by the two
// corners. Valid only while selecting.
func (s *Session) SelectRegion(a, b core.Coord) {
	if s.state != StateSelecting {
		return
	}
	s.grid.SelectRegion(a, b)
	s.failed = nil
}

// ConfirmSelection evaluates the selection-phase constraints. On pass
// the session enters StateMoving and snapshots the confirmed state; on
// fail it stays selecting and reports the failing names. Returns true
// on pass.
func (s *Session) ConfirmSelection() bool {
	if s.state != StateSelecting {
		return false
	}
	failed := constraint.Failing(s.grid, s.lvl.Constraints, constraint.PhaseSelection)
	if len(failed) > 0 {
		s.failed = failed
		return false
	}
	s.confirmed = true
	s.state = StateMoving
	s.failed = nil
	s.hist.Push(s.snapshot())
	return true
}

// BeginDrag starts dragging the confirmed cluster from the given
// pointer position. Valid only while moving and not already dragging.
func (s *Session) BeginDrag(p Pointer) {
	if s.state != StateMoving || s.drag != nil {
		return
	}
	cells := s.grid.Selected()
	d := &dragContext{
		cells:   cells,
		origins: make([]core.Coord, len(cells)),
		start:   p,
	}
	for i, c := range cells {
		d.origins[i] = c.Pos
		// Offsets keeping this cell inside the margin frame.
		minX := -s.lvl.Margins.Left - c.Pos.X
		maxX := s.lvl.Width - s.lvl.Margins.Right - 1 - c.Pos.X
		minY := -s.lvl.Margins.Top - c.Pos.Y
		maxY := s.lvl.Height - s.lvl.Margins.Bottom - 1 - c.Pos.Y
		if i == 0 {
			d.minOff, d.maxOff = core.D(minX, minY), core.D(maxX, maxY)
			continue
		}
		d.minOff.DX = core.Max(d.minOff.DX, minX)
		d.minOff.DY = core.Max(d.minOff.DY, minY)
		d.maxOff.DX = core.Min(d.maxOff.DX, maxX)
		d.maxOff.DY = core.Min(d.maxOff.DY, maxY)
	}
	s.drag = d
}

// UpdateDrag advances the drag to a new pointer position. The
// grid-snapped candidate offset is clamped to the margin bounds and
// rejected wholesale, keeping the last valid offset, if any candidate
// position collides with a non-selected cell.
func (s *Session) UpdateDrag(p Pointer) {
	if s.state != StateMoving || s.drag == nil {
		return
	}
	cand := s.drag.candidate(p, s.cellSize)
	if s.collides(cand) {
		return
	}
	s.drag.last = cand
}

// collides reports whether translating the dragged cells by off would
// land any of them on a non-selected cell.
func (s *Session) collides(off core.Delta) bool {
	occupied := make(map[core.Coord]bool, s.grid.Len())
	for _, c := range s.grid.Cells() {
		if !c.Selected {
			occupied[c.Pos] = true
		}
	}
	for _, orig := range s.drag.origins {
		if occupied[orig.Add(off)] {
			return true
		}
	}
	return false
}

// DragActive reports whether a drag is in progress.
func (s *Session) DragActive() bool {
	return s.drag != nil
}

// DragOffset returns the current valid drag offset, zero when no drag
// is active. The input layer uses it to render the cluster ghost.
func (s *Session) DragOffset() core.Delta {
	if s.drag == nil {
		return core.Delta{}
	}
	return s.drag.last
}

// EndDrag commits the last valid offset to the cells, then evaluates
// the movement-phase constraints. All passing marks the level solved;
// any failure reverts every cell to its origin, clears the selection
// and history, and returns the session to selecting. Returns true when
// the level was solved.
func (s *Session) EndDrag() bool {
	if s.state != StateMoving {
		return false
	}
	if d := s.drag; d != nil {
		for i, c := range d.cells {
			c.Pos = d.origins[i].Add(d.last)
		}
		s.drag = nil
	}

	failed := constraint.Failing(s.grid, s.lvl.Constraints, constraint.PhaseMovement)
	if len(failed) == 0 {
		s.state = StateSolved
		s.failed = nil
		for _, fn := range s.solvedFns {
			fn(s.lvl.ID)
		}
		return true
	}

	s.muted = true
	s.grid.ResetPositions()
	s.grid.ClearSelection()
	s.muted = false
	s.hist.Clear()
	s.confirmed = false
	s.state = StateSelecting
	s.failed = failed
	return false
}

// Reset reverts every cell to its origin, clears selection, history,
// and reported failures. Valid in any non-terminal state.
func (s *Session) Reset() {
	if s.state == StateSolved {
		return
	}
	s.muted = true
	s.grid.ResetPositions()
	s.grid.ClearSelection()
	s.muted = false
	s.hist.Clear()
	s.drag = nil
	s.confirmed = false
	s.failed = nil
	s.state = StateSelecting
}

// Undo restores the previous history snapshot. Returns true if a
// snapshot was restored.
func (s *Session) Undo() bool {
	if s.state == StateSolved {
		return false
	}
	snap, ok := s.hist.Undo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// Redo restores the next history snapshot. Returns true if a snapshot
// was restored.
func (s *Session) Redo() bool {
	if s.state == StateSolved {
		return false
	}
	snap, ok := s.hist.Redo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

func (s *Session) snapshot() Snapshot {
	cells := s.grid.Cells()
	snap := Snapshot{
		Positions: make([]core.Coord, len(cells)),
		Selected:  make([]bool, len(cells)),
		Confirmed: s.confirmed,
	}
	for i, c := range cells {
		snap.Positions[i] = c.Pos
		snap.Selected[i] = c.Selected
	}
	return snap
}

func (s *Session) restore(snap Snapshot) {
	s.muted = true
	s.grid.Restore(snap.Positions, snap.Selected)
	s.muted = false
	s.drag = nil
	s.failed = nil
	s.confirmed = snap.Confirmed
	if s.confirmed {
		s.state = StateMoving
	} else {
		s.state = StateSelecting
	}
}
