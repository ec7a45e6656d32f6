package session

import (
	"testing"

	"github.com/vovakirdan/tui-gridlock/internal/core"
)

func snapAt(x int) Snapshot {
	return Snapshot{Positions: []core.Coord{core.C(x, 0)}, Selected: []bool{false}}
}

func TestHistoryEmpty(t *testing.T) {
	h := newHistory()
	if _, ok := h.Undo(); ok {
		t.Error("Undo on empty history should fail")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo on empty history should fail")
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHistoryUndoRedoWalk(t *testing.T) {
	h := newHistory()
	h.Push(snapAt(0))
	h.Push(snapAt(1))
	h.Push(snapAt(2))

	snap, ok := h.Undo()
	if !ok || snap.Positions[0].X != 1 {
		t.Fatalf("first undo = %v/%v, want x=1", snap, ok)
	}
	snap, ok = h.Undo()
	if !ok || snap.Positions[0].X != 0 {
		t.Fatalf("second undo = %v/%v, want x=0", snap, ok)
	}
	if _, ok := h.Undo(); ok {
		t.Error("undo past the first entry should fail")
	}

	snap, ok = h.Redo()
	if !ok || snap.Positions[0].X != 1 {
		t.Fatalf("redo = %v/%v, want x=1", snap, ok)
	}
}

func TestHistoryPushTruncatesRedoTail(t *testing.T) {
	h := newHistory()
	h.Push(snapAt(0))
	h.Push(snapAt(1))
	h.Push(snapAt(2))
	h.Undo()
	h.Undo()
	h.Push(snapAt(9))

	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after truncating the redo tail", h.Len())
	}
	if _, ok := h.Redo(); ok {
		t.Error("redo after a divergent push should fail")
	}
	snap, ok := h.Undo()
	if !ok || snap.Positions[0].X != 0 {
		t.Errorf("undo after divergent push = %v/%v, want x=0", snap, ok)
	}
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	h := newHistory()
	for i := 0; i < historyCap+5; i++ {
		h.Push(snapAt(i))
	}
	if h.Len() != historyCap {
		t.Fatalf("Len() = %d, want %d", h.Len(), historyCap)
	}

	// Walk all the way back: the oldest reachable snapshot is the
	// first one still inside the window.
	var last Snapshot
	for {
		snap, ok := h.Undo()
		if !ok {
			break
		}
		last = snap
	}
	if got := last.Positions[0].X; got != 5 {
		t.Errorf("oldest snapshot x = %d, want 5", got)
	}
}
