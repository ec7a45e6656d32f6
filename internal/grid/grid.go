// Package grid holds the live cell collection for one level instance:
// the ordered cells, the current selection subset, and connectivity
// queries over it.
package grid

import (
	"github.com/vovakirdan/tui-gridlock/internal/core"
)

// Grid is the set of cells plus current selection for one level.
// Cell order is insertion order; it carries no meaning beyond
// deterministic iteration.
type Grid struct {
	cells     []*core.Cell
	selected  map[*core.Cell]struct{}
	observers []func()
}

// New creates an empty grid.
func New() *Grid {
	return &Grid{
		selected: make(map[*core.Cell]struct{}),
	}
}

// OnSelectionChange registers a subscriber invoked after every change
// to the selection subset. Bulk restores do not notify.
func (g *Grid) OnSelectionChange(fn func()) {
	g.observers = append(g.observers, fn)
}

func (g *Grid) notify() {
	for _, fn := range g.observers {
		fn()
	}
}

// Add appends a cell to the grid.
func (g *Grid) Add(c *core.Cell) {
	g.cells = append(g.cells, c)
	if c.Selected {
		g.selected[c] = struct{}{}
	}
}

// Remove deletes a cell from the grid and from the selection subset.
func (g *Grid) Remove(c *core.Cell) {
	for i, existing := range g.cells {
		if existing == c {
			g.cells = append(g.cells[:i], g.cells[i+1:]...)
			break
		}
	}
	delete(g.selected, c)
}

// Cells returns the cells in insertion order. The slice is shared;
// callers must not modify it.
func (g *Grid) Cells() []*core.Cell {
	return g.cells
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// CellAt returns the cell occupying pos, or nil.
func (g *Grid) CellAt(pos core.Coord) *core.Cell {
	for _, c := range g.cells {
		if c.Pos == pos {
			return c
		}
	}
	return nil
}

// Occupancy returns a position-to-cell map over all cells.
func (g *Grid) Occupancy() map[core.Coord]*core.Cell {
	m := make(map[core.Coord]*core.Cell, len(g.cells))
	for _, c := range g.cells {
		m[c.Pos] = c
	}
	return m
}

// Select marks the cell as selected. Idempotent; fires the
// selection-change notification only on an actual change.
func (g *Grid) Select(c *core.Cell) {
	if _, ok := g.selected[c]; ok {
		return
	}
	c.Selected = true
	g.selected[c] = struct{}{}
	g.notify()
}

// Deselect clears the cell's selected flag. Idempotent.
func (g *Grid) Deselect(c *core.Cell) {
	if _, ok := g.selected[c]; !ok {
		return
	}
	c.Selected = false
	delete(g.selected, c)
	g.notify()
}

// SelectRegion selects every cell inside the axis-aligned rectangle
// spanned by the two corners, borders included. Fires a single
// notification if anything changed.
func (g *Grid) SelectRegion(a, b core.Coord) {
	r := core.Span(a, b)
	changed := false
	for _, c := range g.cells {
		if !r.Contains(c.Pos) {
			continue
		}
		if _, ok := g.selected[c]; ok {
			continue
		}
		c.Selected = true
		g.selected[c] = struct{}{}
		changed = true
	}
	if changed {
		g.notify()
	}
}

// ClearSelection deselects every cell. Fires one notification if the
// selection was non-empty.
func (g *Grid) ClearSelection() {
	if len(g.selected) == 0 {
		return
	}
	for c := range g.selected {
		c.Selected = false
	}
	g.selected = make(map[*core.Cell]struct{})
	g.notify()
}

// SelectionCount returns the number of selected cells.
func (g *Grid) SelectionCount() int {
	return len(g.selected)
}

// Selected returns the selected cells in grid insertion order.
func (g *Grid) Selected() []*core.Cell {
	out := make([]*core.Cell, 0, len(g.selected))
	for _, c := range g.cells {
		if c.Selected {
			out = append(out, c)
		}
	}
	return out
}

// TranslateSelected rigidly moves every selected cell by delta.
func (g *Grid) TranslateSelected(d core.Delta) {
	for c := range g.selected {
		c.Pos = c.Pos.Add(d)
	}
}

// ResetPositions moves every cell back to its load-time origin.
func (g *Grid) ResetPositions() {
	for _, c := range g.cells {
		c.Pos = c.Origin
	}
}

// SelectionConnected reports whether the selected cells form a single
// 4-connected component. Zero or one selected cells count as connected.
func (g *Grid) SelectionConnected() bool {
	positions := make(map[core.Coord]bool, len(g.selected))
	var start core.Coord
	for c := range g.selected {
		positions[c.Pos] = true
		start = c.Pos
	}
	if len(positions) <= 1 {
		return true
	}

	visited := map[core.Coord]bool{start: true}
	queue := []core.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors() {
			if positions[n] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(positions)
}

// Restore bulk-applies a snapshot of per-cell positions and selected
// flags, parallel to Cells order. It bypasses selection notifications
// so history restores do not re-enter the snapshot path.
func (g *Grid) Restore(positions []core.Coord, selected []bool) {
	g.selected = make(map[*core.Cell]struct{}, len(g.cells))
	for i, c := range g.cells {
		if i >= len(positions) || i >= len(selected) {
			break
		}
		c.Pos = positions[i]
		c.Selected = selected[i]
		if c.Selected {
			g.selected[c] = struct{}{}
		}
	}
}
