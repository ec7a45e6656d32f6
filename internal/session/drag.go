package session

import (
	"github.com/vovakirdan/tui-gridlock/internal/core"
)

// Pointer is a pointer position in pixel coordinates, as delivered by
// the input layer. Grid snapping happens inside the session.
type Pointer struct {
	X, Y int
}

// dragContext is the scratch state of one in-progress drag. It exists
// only between BeginDrag and EndDrag; cells are not mutated until the
// drag ends.
type dragContext struct {
	cells   []*core.Cell // selected cells, grid order
	origins []core.Coord // their positions at BeginDrag
	start   Pointer

	// Per-axis offset bounds keeping every cell inside the margins,
	// precomputed at BeginDrag.
	minOff core.Delta
	maxOff core.Delta

	last core.Delta // last valid grid-snapped offset
}

// candidate returns the grid-snapped translation for the pointer,
// truncated toward zero and clamped to the margin bounds.
func (d *dragContext) candidate(p Pointer, cellSize int) core.Delta {
	cand := core.Delta{
		DX: (p.X - d.start.X) / cellSize,
		DY: (p.Y - d.start.Y) / cellSize,
	}
	if len(d.cells) == 0 {
		return cand
	}
	cand.DX = core.Clamp(cand.DX, d.minOff.DX, d.maxOff.DX)
	cand.DY = core.Clamp(cand.DY, d.minOff.DY, d.maxOff.DY)
	return cand
}
