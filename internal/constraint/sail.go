package constraint

import (
	"github.com/vovakirdan/tui-gridlock/internal/core"
	"github.com/vovakirdan/tui-gridlock/internal/grid"
)

// Sail node geometry uses tenth-of-a-cell fixed-point coordinates so
// both distance comparisons below are exact integer arithmetic:
//
//	0.61² = 0.3721  →  scaled squared distance ≤ 37 (no integer falls
//	                   in (37, 37.21])
//	exactly 1       →  scaled squared distance == 100
const (
	sailScale      = 10
	sailFaceOffset = 4   // 0.4 of a cell toward the face
	sailNearSq     = 37  // ≤ 0.61² in scaled-squared units
	sailUnitSq     = 100 // exactly 1 in scaled-squared units
)

type sailNode struct {
	x, y int // tenth-cell units
}

// onGrid reports whether the node sits on an integer cell coordinate,
// i.e. it is a full sea cell rather than a pyramid face stub.
func (n sailNode) onGrid() bool {
	return n.x%sailScale == 0 && n.y%sailScale == 0
}

// checkSail passes when the sea content forms one connected flotilla.
// Every sea cell contributes a node at its center; every pyramid face
// requiring sea contributes a node 0.4 cells toward that face. Two
// nodes connect when they are within 0.61 cells, or when both sit on
// integer coordinates exactly one cell apart.
func checkSail(g *grid.Grid) bool {
	var nodes []sailNode
	for _, c := range g.Cells() {
		switch c.Kind {
		case core.KindSea:
			nodes = append(nodes, sailNode{x: c.Pos.X * sailScale, y: c.Pos.Y * sailScale})
		case core.KindPyramid:
			for _, face := range [...]core.Face{core.FaceTop, core.FaceBottom, core.FaceLeft, core.FaceRight} {
				if c.Faces[face] != core.FaceSea {
					continue
				}
				d := face.Offset()
				nodes = append(nodes, sailNode{
					x: c.Pos.X*sailScale + d.DX*sailFaceOffset,
					y: c.Pos.Y*sailScale + d.DY*sailFaceOffset,
				})
			}
		}
	}
	if len(nodes) < 2 {
		return true
	}

	visited := make([]bool, len(nodes))
	queue := []int{0}
	visited[0] = true
	reached := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := range nodes {
			if visited[i] || !sailAdjacent(nodes[cur], nodes[i]) {
				continue
			}
			visited[i] = true
			reached++
			queue = append(queue, i)
		}
	}
	return reached == len(nodes)
}

func sailAdjacent(a, b sailNode) bool {
	dx, dy := a.x-b.x, a.y-b.y
	d2 := dx*dx + dy*dy
	if d2 <= sailNearSq {
		return true
	}
	return d2 == sailUnitSq && a.onGrid() && b.onGrid()
}
