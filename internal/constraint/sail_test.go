package constraint

import (
	"testing"

	"github.com/vovakirdan/tui-gridlock/internal/core"
)

func TestSailAdjacentSeaCells(t *testing.T) {
	g := gridOf(
		core.NewSolid(core.KindSea, core.C(0, 0)),
		core.NewSolid(core.KindSea, core.C(1, 0)),
	)
	if !checkSail(g) {
		t.Error("two adjacent sea cells should pass")
	}
}

func TestSailGappedSeaCellsFail(t *testing.T) {
	g := gridOf(
		core.NewSolid(core.KindSea, core.C(0, 0)),
		core.NewSolid(core.KindSea, core.C(2, 0)),
	)
	if checkSail(g) {
		t.Error("sea cells two apart should fail")
	}
}

func TestSailFewerThanTwoNodesPass(t *testing.T) {
	if !checkSail(gridOf(core.NewSolid(core.KindDark, core.C(0, 0)))) {
		t.Error("no sea content should pass")
	}
	if !checkSail(gridOf(core.NewSolid(core.KindSea, core.C(4, 4)))) {
		t.Error("a single sea cell should pass")
	}
}

func TestSailFaceStubReachesSeaCell(t *testing.T) {
	// The stub sits 0.4 cells toward the face, 0.6 from the sea cell
	// center, which is within the 0.61 near radius.
	g := gridOf(
		core.NewSolid(core.KindSea, core.C(0, 0)),
		core.NewPyramid(core.C(1, 0), facesWith(core.FaceLeft, core.FaceSea)),
	)
	if !checkSail(g) {
		t.Error("a sea face stub next to a sea cell should connect")
	}
}

func TestSailFacingStubsConnect(t *testing.T) {
	// Two stubs pointing at each other are only 0.2 cells apart.
	g := gridOf(
		core.NewPyramid(core.C(0, 0), facesWith(core.FaceRight, core.FaceSea)),
		core.NewPyramid(core.C(1, 0), facesWith(core.FaceLeft, core.FaceSea)),
	)
	if !checkSail(g) {
		t.Error("facing sea stubs should connect")
	}
}

func TestSailUnitDistanceNeedsGridNodes(t *testing.T) {
	// Two downward stubs exactly one cell apart: the unit-distance rule
	// applies only to nodes on integer coordinates, so they stay apart.
	g := gridOf(
		core.NewPyramid(core.C(0, 0), facesWith(core.FaceBottom, core.FaceSea)),
		core.NewPyramid(core.C(1, 0), facesWith(core.FaceBottom, core.FaceSea)),
	)
	if checkSail(g) {
		t.Error("off-grid nodes a full cell apart must not connect")
	}
}

func TestSailStubFacingAwayFails(t *testing.T) {
	// The stub points away from the sea cell, leaving 1.4 cells
	// between the nodes.
	g := gridOf(
		core.NewSolid(core.KindSea, core.C(1, 0)),
		core.NewPyramid(core.C(0, 0), facesWith(core.FaceLeft, core.FaceSea)),
	)
	if checkSail(g) {
		t.Error("a stub facing away from the sea cell should not connect")
	}
}

func TestSailOppositeStubsDoNotBridge(t *testing.T) {
	// Stubs on opposite sides of one pyramid sit 0.8 cells apart,
	// beyond the near radius, so a pyramid never relays connectivity
	// between its own faces.
	var both core.Faces
	both[core.FaceLeft] = core.FaceSea
	both[core.FaceRight] = core.FaceSea

	g := gridOf(
		core.NewSolid(core.KindSea, core.C(0, 0)),
		core.NewPyramid(core.C(1, 0), both),
		core.NewSolid(core.KindSea, core.C(2, 0)),
	)
	if checkSail(g) {
		t.Error("opposite stubs of one pyramid must not bridge the two seas")
	}
}
