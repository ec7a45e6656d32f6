package session

import (
	"testing"

	"github.com/vovakirdan/tui-gridlock/internal/core"
	"github.com/vovakirdan/tui-gridlock/internal/level"
)

func loadEmbedded(t *testing.T, id string) level.Level {
	t.Helper()
	lvl, err := level.NewLoader("").LoadByID(id)
	if err != nil {
		t.Fatalf("loading embedded level %s: %v", id, err)
	}
	return lvl
}

// dragBy walks a confirmed session through a synthetic drag of the
// given cell offset.
func dragBy(s *Session, dx, dy int) bool {
	s.BeginDrag(Pointer{})
	s.UpdateDrag(Pointer{X: dx * DefaultCellSize, Y: dy * DefaultCellSize})
	return s.EndDrag()
}

func TestSolveGlueLevel(t *testing.T) {
	s := New(loadEmbedded(t, "1-1"), 0)
	var solvedID string
	s.OnSolved(func(id string) { solvedID = id })

	s.SelectRegion(core.C(6, 4), core.C(8, 5))
	if !s.ConfirmSelection() {
		t.Fatalf("confirm failed: %v", s.FailedConstraints())
	}
	if !dragBy(s, 1, 0) {
		t.Fatalf("drop failed: %v", s.FailedConstraints())
	}
	if solvedID != "1-1" {
		t.Errorf("solved handler got %q, want 1-1", solvedID)
	}
}

func TestSolveMirrorLevel(t *testing.T) {
	// Moving the center block down completes the symmetric U shape.
	s := New(loadEmbedded(t, "1-2"), 0)

	if !s.ToggleCell(core.C(7, 4)) {
		t.Fatal("center block not found")
	}
	if !s.ConfirmSelection() {
		t.Fatalf("confirm failed: %v", s.FailedConstraints())
	}
	if !dragBy(s, 0, 1) {
		t.Fatalf("drop failed: %v", s.FailedConstraints())
	}
}

func TestSolvePyramidLevel(t *testing.T) {
	// The loose dark block slides one cell left onto the pyramid's
	// dark right face.
	s := New(loadEmbedded(t, "2-1"), 0)

	if !s.ToggleCell(core.C(9, 4)) {
		t.Fatal("loose block not found")
	}
	if !s.ConfirmSelection() {
		t.Fatalf("confirm failed: %v", s.FailedConstraints())
	}
	if !dragBy(s, -1, 0) {
		t.Fatalf("drop failed: %v", s.FailedConstraints())
	}
}

func TestSolveSailLevel(t *testing.T) {
	// Sliding the two sea cells right joins them to the pyramid's sea
	// face stub.
	s := New(loadEmbedded(t, "2-2"), 0)

	s.SelectRegion(core.C(5, 4), core.C(6, 4))
	if !s.ConfirmSelection() {
		t.Fatalf("confirm failed: %v", s.FailedConstraints())
	}
	if !dragBy(s, 1, 0) {
		t.Fatalf("drop failed: %v", s.FailedConstraints())
	}
}

func TestSailLevelWrongDropReverts(t *testing.T) {
	s := New(loadEmbedded(t, "2-2"), 0)

	s.SelectRegion(core.C(5, 4), core.C(6, 4))
	if !s.ConfirmSelection() {
		t.Fatalf("confirm failed: %v", s.FailedConstraints())
	}
	if dragBy(s, -1, 0) {
		t.Fatal("moving the seas away from the pyramid should not solve")
	}
	if s.State() != StateSelecting {
		t.Errorf("state = %v, want selecting after failed drop", s.State())
	}
}
