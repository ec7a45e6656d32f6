package constraint

import (
	"github.com/vovakirdan/tui-gridlock/internal/core"
	"github.com/vovakirdan/tui-gridlock/internal/grid"
)

// checkMirror passes when the whole configuration (all cells, not just
// the selection) is symmetric under at least one of four reflections:
// the vertical axis, the horizontal axis, or either diagonal.
func checkMirror(g *grid.Grid) bool {
	cells := g.Cells()
	if len(cells) <= 1 {
		return true
	}
	occ := g.Occupancy()
	return mirrorAxisX(cells, occ) ||
		mirrorAxisY(cells, occ) ||
		mirrorDiagonalFalling(cells, occ) ||
		mirrorDiagonalRising(cells, occ)
}

// mirrorAxisX reflects x about the midline of the occupied x range.
// Pyramid pairs whose face arrays differ must relate by a top/bottom
// face swap with left/right unchanged.
func mirrorAxisX(cells []*core.Cell, occ map[core.Coord]*core.Cell) bool {
	minX, maxX := cells[0].Pos.X, cells[0].Pos.X
	for _, c := range cells[1:] {
		minX = core.Min(minX, c.Pos.X)
		maxX = core.Max(maxX, c.Pos.X)
	}
	// 2*center_x = minX+maxX, so the mirror coordinate is always integral.
	sum := minX + maxX
	for _, c := range cells {
		m, ok := occ[core.C(sum-c.Pos.X, c.Pos.Y)]
		if !ok || m.Kind != c.Kind {
			return false
		}
		if c.Kind == core.KindPyramid && m.Faces != c.Faces {
			if m.Faces[core.FaceTop] != c.Faces[core.FaceBottom] ||
				m.Faces[core.FaceBottom] != c.Faces[core.FaceTop] ||
				m.Faces[core.FaceLeft] != c.Faces[core.FaceLeft] ||
				m.Faces[core.FaceRight] != c.Faces[core.FaceRight] {
				return false
			}
		}
	}
	return true
}

// mirrorAxisY reflects y about the midline of the occupied y range,
// with the swap applied to left/right faces instead.
func mirrorAxisY(cells []*core.Cell, occ map[core.Coord]*core.Cell) bool {
	minY, maxY := cells[0].Pos.Y, cells[0].Pos.Y
	for _, c := range cells[1:] {
		minY = core.Min(minY, c.Pos.Y)
		maxY = core.Max(maxY, c.Pos.Y)
	}
	sum := minY + maxY
	for _, c := range cells {
		m, ok := occ[core.C(c.Pos.X, sum-c.Pos.Y)]
		if !ok || m.Kind != c.Kind {
			return false
		}
		if c.Kind == core.KindPyramid && m.Faces != c.Faces {
			if m.Faces[core.FaceLeft] != c.Faces[core.FaceRight] ||
				m.Faces[core.FaceRight] != c.Faces[core.FaceLeft] ||
				m.Faces[core.FaceTop] != c.Faces[core.FaceTop] ||
				m.Faces[core.FaceBottom] != c.Faces[core.FaceBottom] {
				return false
			}
		}
	}
	return true
}

// mirrorDiagonalFalling reflects about the line of constant x−y through
// the center of the occupied x−y range. Only the kind tag must match;
// face orientation is not checked on the diagonals.
func mirrorDiagonalFalling(cells []*core.Cell, occ map[core.Coord]*core.Cell) bool {
	minD := cells[0].Pos.X - cells[0].Pos.Y
	maxD := minD
	for _, c := range cells[1:] {
		d := c.Pos.X - c.Pos.Y
		minD = core.Min(minD, d)
		maxD = core.Max(maxD, d)
	}
	sum := minD + maxD
	if sum%2 != 0 {
		// Half-integral center: every mirror coordinate is non-integer.
		return false
	}
	center := sum / 2
	for _, c := range cells {
		m, ok := occ[core.C(c.Pos.Y+center, c.Pos.X-center)]
		if !ok || m.Kind != c.Kind {
			return false
		}
	}
	return true
}

// mirrorDiagonalRising reflects about the line of constant x+y through
// the center of the occupied x+y range. Kind tag only, as above.
func mirrorDiagonalRising(cells []*core.Cell, occ map[core.Coord]*core.Cell) bool {
	minS := cells[0].Pos.X + cells[0].Pos.Y
	maxS := minS
	for _, c := range cells[1:] {
		s := c.Pos.X + c.Pos.Y
		minS = core.Min(minS, s)
		maxS = core.Max(maxS, s)
	}
	sum := minS + maxS
	if sum%2 != 0 {
		return false
	}
	center := sum / 2
	for _, c := range cells {
		m, ok := occ[core.C(center-c.Pos.Y, center-c.Pos.X)]
		if !ok || m.Kind != c.Kind {
			return false
		}
	}
	return true
}
