package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "sub", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directory and file were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestMarkCompletedAndIsCompleted(t *testing.T) {
	store := openTestStore(t)

	done, err := store.IsCompleted("1-1")
	if err != nil {
		t.Fatalf("IsCompleted() failed: %v", err)
	}
	if done {
		t.Error("fresh store should have no completions")
	}

	if err := store.MarkCompleted("1-1"); err != nil {
		t.Fatalf("MarkCompleted() failed: %v", err)
	}

	done, err = store.IsCompleted("1-1")
	if err != nil {
		t.Fatalf("IsCompleted() failed: %v", err)
	}
	if !done {
		t.Error("1-1 should be completed")
	}
}

func TestAttemptsCountedIntoCompletion(t *testing.T) {
	store := openTestStore(t)

	// Two failed attempts, then the solving one.
	if err := store.RecordAttempt("1-2"); err != nil {
		t.Fatalf("RecordAttempt() failed: %v", err)
	}
	if err := store.RecordAttempt("1-2"); err != nil {
		t.Fatalf("RecordAttempt() failed: %v", err)
	}
	if err := store.MarkCompleted("1-2"); err != nil {
		t.Fatalf("MarkCompleted() failed: %v", err)
	}

	completions, err := store.Completions()
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	if len(completions) != 1 {
		t.Fatalf("len(Completions()) = %d, want 1", len(completions))
	}
	if completions[0].Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", completions[0].Attempts)
	}
	if completions[0].SolvedAt.IsZero() {
		t.Error("SolvedAt should be set")
	}
}

func TestFirstCompletionWins(t *testing.T) {
	store := openTestStore(t)

	if err := store.MarkCompleted("2-1"); err != nil {
		t.Fatalf("MarkCompleted() failed: %v", err)
	}
	first, err := store.Completions()
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}

	// Replays with more attempts must not overwrite the record.
	store.RecordAttempt("2-1")
	store.RecordAttempt("2-1")
	if err := store.MarkCompleted("2-1"); err != nil {
		t.Fatalf("second MarkCompleted() failed: %v", err)
	}

	second, err := store.Completions()
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("len(Completions()) = %d, want 1", len(second))
	}
	if second[0].Attempts != first[0].Attempts {
		t.Errorf("replay overwrote attempts: %d -> %d", first[0].Attempts, second[0].Attempts)
	}
}

func TestCompletionsOrderedByID(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"2-2", "1-1", "1-3"} {
		if err := store.MarkCompleted(id); err != nil {
			t.Fatalf("MarkCompleted(%s) failed: %v", id, err)
		}
	}

	completions, err := store.Completions()
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	want := []string{"1-1", "1-3", "2-2"}
	if len(completions) != len(want) {
		t.Fatalf("len = %d, want %d", len(completions), len(want))
	}
	for i, id := range want {
		if completions[i].LevelID != id {
			t.Errorf("completions[%d] = %s, want %s", i, completions[i].LevelID, id)
		}
	}
}

func TestCompletedCounts(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"1-1", "1-2", "2-1"} {
		if err := store.MarkCompleted(id); err != nil {
			t.Fatalf("MarkCompleted(%s) failed: %v", id, err)
		}
	}

	total, err := store.CompletedCount()
	if err != nil {
		t.Fatalf("CompletedCount() failed: %v", err)
	}
	if total != 3 {
		t.Errorf("CompletedCount() = %d, want 3", total)
	}

	inPack, err := store.CompletedInPack("1")
	if err != nil {
		t.Fatalf("CompletedInPack() failed: %v", err)
	}
	if inPack != 2 {
		t.Errorf("CompletedInPack(1) = %d, want 2", inPack)
	}
}

func TestClearProgress(t *testing.T) {
	store := openTestStore(t)

	store.RecordAttempt("1-1")
	if err := store.MarkCompleted("1-1"); err != nil {
		t.Fatalf("MarkCompleted() failed: %v", err)
	}

	if err := store.ClearProgress(); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}

	done, err := store.IsCompleted("1-1")
	if err != nil {
		t.Fatalf("IsCompleted() failed: %v", err)
	}
	if done {
		t.Error("ClearProgress should erase completions")
	}

	// Attempt counters start over too.
	if err := store.MarkCompleted("1-1"); err != nil {
		t.Fatalf("MarkCompleted() failed: %v", err)
	}
	completions, err := store.Completions()
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	if completions[0].Attempts != 1 {
		t.Errorf("Attempts = %d, want 1 after clear", completions[0].Attempts)
	}
}
