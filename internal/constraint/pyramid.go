package constraint

import (
	"github.com/vovakirdan/tui-gridlock/internal/core"
	"github.com/vovakirdan/tui-gridlock/internal/grid"
)

// checkPyramidSelection checks only the selected pyramids against the
// selected cells. Missing neighbors are treated permissively: the
// player may still be assembling the cluster.
func checkPyramidSelection(g *grid.Grid) bool {
	selected := g.Selected()
	occ := make(map[core.Coord]*core.Cell, len(selected))
	for _, c := range selected {
		occ[c.Pos] = c
	}
	for _, c := range selected {
		if c.Kind != core.KindPyramid {
			continue
		}
		if !checkPyramidFaces(c, occ, false) {
			return false
		}
	}
	return true
}

// checkPyramidMovement checks every pyramid in the grid against the
// full grid. A missing neighbor passes only when the face requires
// nothing there.
func checkPyramidMovement(g *grid.Grid) bool {
	occ := g.Occupancy()
	for _, c := range g.Cells() {
		if c.Kind != core.KindPyramid {
			continue
		}
		if !checkPyramidFaces(c, occ, true) {
			return false
		}
	}
	return true
}

func checkPyramidFaces(c *core.Cell, occ map[core.Coord]*core.Cell, strict bool) bool {
	for _, face := range [...]core.Face{core.FaceTop, core.FaceBottom, core.FaceLeft, core.FaceRight} {
		pos := c.Pos.Add(face.Offset())
		if !checkFace(pos, c.Faces[face], face, occ, strict) {
			return false
		}
	}
	return true
}

// checkFace validates one face of a pyramid against whatever occupies
// the neighboring position.
//
// An empty neighbor satisfies a FaceNone requirement; for colored
// requirements it passes only when strict is false. An occupied
// neighbor must supply the exact required color: a solid cell via its
// kind, a pyramid via the face pointing back at us. In particular a
// FaceNone requirement next to an occupied cell fails unless that cell
// is a pyramid whose facing face is also FaceNone.
func checkFace(pos core.Coord, req core.FaceColor, face core.Face, occ map[core.Coord]*core.Cell, strict bool) bool {
	neighbor, ok := occ[pos]
	if !ok {
		if req == core.FaceNone {
			return true
		}
		return !strict
	}
	switch neighbor.Kind {
	case core.KindDark:
		return req == core.FaceDark
	case core.KindSea:
		return req == core.FaceSea
	case core.KindPyramid:
		return neighbor.Faces[face.Opposite()] == req
	default:
		return false
	}
}
