package grid

import (
	"testing"

	"github.com/vovakirdan/tui-gridlock/internal/core"
)

func newTestGrid(positions ...core.Coord) *Grid {
	g := New()
	for _, pos := range positions {
		g.Add(core.NewSolid(core.KindDark, pos))
	}
	return g
}

func TestCellAt(t *testing.T) {
	g := newTestGrid(core.C(1, 1), core.C(2, 1))
	if c := g.CellAt(core.C(2, 1)); c == nil {
		t.Fatal("expected a cell at (2,1)")
	}
	if c := g.CellAt(core.C(9, 9)); c != nil {
		t.Errorf("expected no cell at (9,9), got %v", c.Pos)
	}
}

func TestSelectIdempotent(t *testing.T) {
	g := newTestGrid(core.C(0, 0))
	c := g.Cells()[0]

	fired := 0
	g.OnSelectionChange(func() { fired++ })

	g.Select(c)
	g.Select(c)
	if fired != 1 {
		t.Errorf("expected 1 notification, got %d", fired)
	}
	if g.SelectionCount() != 1 {
		t.Errorf("SelectionCount() = %d, want 1", g.SelectionCount())
	}

	g.Deselect(c)
	g.Deselect(c)
	if fired != 2 {
		t.Errorf("expected 2 notifications, got %d", fired)
	}
	if g.SelectionCount() != 0 {
		t.Errorf("SelectionCount() = %d, want 0", g.SelectionCount())
	}
}

func TestSelectRegionSingleNotification(t *testing.T) {
	g := newTestGrid(core.C(0, 0), core.C(1, 0), core.C(2, 0), core.C(5, 5))

	fired := 0
	g.OnSelectionChange(func() { fired++ })

	g.SelectRegion(core.C(0, 0), core.C(2, 0))
	if fired != 1 {
		t.Errorf("expected 1 notification for region select, got %d", fired)
	}
	if g.SelectionCount() != 3 {
		t.Errorf("SelectionCount() = %d, want 3", g.SelectionCount())
	}

	// Region not covering anything new fires nothing.
	g.SelectRegion(core.C(0, 0), core.C(1, 0))
	if fired != 1 {
		t.Errorf("no-op region select should not notify, got %d", fired)
	}
}

func TestSelectedInsertionOrder(t *testing.T) {
	g := newTestGrid(core.C(0, 0), core.C(1, 0), core.C(2, 0))
	cells := g.Cells()
	g.Select(cells[2])
	g.Select(cells[0])

	sel := g.Selected()
	if len(sel) != 2 {
		t.Fatalf("len(Selected()) = %d, want 2", len(sel))
	}
	if sel[0] != cells[0] || sel[1] != cells[2] {
		t.Error("Selected() must follow grid insertion order, not selection order")
	}
}

func TestSelectionConnected(t *testing.T) {
	cases := []struct {
		name      string
		positions []core.Coord
		selected  []int
		want      bool
	}{
		{"empty selection", []core.Coord{core.C(0, 0)}, nil, true},
		{"single cell", []core.Coord{core.C(0, 0)}, []int{0}, true},
		{"adjacent pair", []core.Coord{core.C(0, 0), core.C(1, 0)}, []int{0, 1}, true},
		{"gap", []core.Coord{core.C(0, 0), core.C(2, 0)}, []int{0, 1}, false},
		{"diagonal only", []core.Coord{core.C(0, 0), core.C(1, 1)}, []int{0, 1}, false},
		{"L shape", []core.Coord{core.C(0, 0), core.C(0, 1), core.C(1, 1)}, []int{0, 1, 2}, true},
		{"two islands", []core.Coord{core.C(0, 0), core.C(1, 0), core.C(5, 5), core.C(6, 5)}, []int{0, 1, 2, 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(tc.positions...)
			for _, i := range tc.selected {
				g.Select(g.Cells()[i])
			}
			if got := g.SelectionConnected(); got != tc.want {
				t.Errorf("SelectionConnected() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTranslateSelected(t *testing.T) {
	g := newTestGrid(core.C(0, 0), core.C(1, 0))
	g.Select(g.Cells()[0])
	g.TranslateSelected(core.D(2, 3))

	if got := g.Cells()[0].Pos; got != core.C(2, 3) {
		t.Errorf("selected cell moved to %v, want (2,3)", got)
	}
	if got := g.Cells()[1].Pos; got != core.C(1, 0) {
		t.Errorf("unselected cell moved to %v, want (1,0)", got)
	}
}

func TestResetPositions(t *testing.T) {
	g := newTestGrid(core.C(0, 0), core.C(1, 0))
	g.Select(g.Cells()[0])
	g.TranslateSelected(core.D(4, 4))
	g.ResetPositions()

	for _, c := range g.Cells() {
		if c.Pos != c.Origin {
			t.Errorf("cell at %v, want origin %v", c.Pos, c.Origin)
		}
	}
}

func TestRestoreBypassesNotifications(t *testing.T) {
	g := newTestGrid(core.C(0, 0), core.C(1, 0))

	fired := 0
	g.OnSelectionChange(func() { fired++ })

	g.Restore([]core.Coord{core.C(5, 5), core.C(6, 5)}, []bool{true, false})
	if fired != 0 {
		t.Errorf("Restore must not notify, got %d notifications", fired)
	}
	if g.SelectionCount() != 1 {
		t.Errorf("SelectionCount() = %d, want 1", g.SelectionCount())
	}
	if got := g.Cells()[0].Pos; got != core.C(5, 5) {
		t.Errorf("restored position = %v, want (5,5)", got)
	}
	if !g.Cells()[0].Selected {
		t.Error("restored cell 0 should be selected")
	}
}

func TestRemove(t *testing.T) {
	g := newTestGrid(core.C(0, 0), core.C(1, 0))
	c := g.Cells()[0]
	g.Select(c)
	g.Remove(c)

	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	if g.SelectionCount() != 0 {
		t.Errorf("removed cell must leave the selection, count = %d", g.SelectionCount())
	}
}
