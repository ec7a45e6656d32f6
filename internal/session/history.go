package session

import (
	"github.com/vovakirdan/tui-gridlock/internal/core"
)

// historyCap bounds the undo history; the oldest snapshot is evicted
// when a push would exceed it.
const historyCap = 20

// Snapshot is an immutable record of the mutable puzzle state: every
// cell's position and selected flag (parallel to grid cell order) plus
// whether the selection was confirmed.
type Snapshot struct {
	Positions []core.Coord
	Selected  []bool
	Confirmed bool
}

// history is a bounded linear undo/redo buffer with a cursor. Pushing
// after a non-tip undo truncates the redo tail.
type history struct {
	entries []Snapshot
	cursor  int // index of the current entry, -1 when empty
}

func newHistory() *history {
	return &history{cursor: -1}
}

// Push records a new snapshot as the current entry.
func (h *history) Push(s Snapshot) {
	h.entries = append(h.entries[:h.cursor+1], s)
	if len(h.entries) > historyCap {
		h.entries = h.entries[len(h.entries)-historyCap:]
	}
	h.cursor = len(h.entries) - 1
}

// Undo steps the cursor back and returns the snapshot to restore.
func (h *history) Undo() (Snapshot, bool) {
	if h.cursor <= 0 {
		return Snapshot{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo steps the cursor forward and returns the snapshot to restore.
func (h *history) Redo() (Snapshot, bool) {
	if h.cursor >= len(h.entries)-1 {
		return Snapshot{}, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Clear discards all entries.
func (h *history) Clear() {
	h.entries = nil
	h.cursor = -1
}

// Len returns the number of stored snapshots.
func (h *history) Len() int {
	return len(h.entries)
}
