package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okigiri/fifteen/internal/puzzle"
)

var (
	classic = puzzle.Shape{Width: 4, Height: 4}
	small   = puzzle.Shape{Width: 3, Height: 3}
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	seed := puzzle.Seed{1, 2, 3}
	solves := []struct {
		shape puzzle.Shape
		moves int
		took  time.Duration
	}{
		{shape: classic, moves: 140, took: 62 * time.Second},
		{shape: classic, moves: 95, took: 41 * time.Second},
		{shape: classic, moves: 200, took: 90 * time.Second},
		{shape: small, moves: 30, took: 12 * time.Second},
	}
	for _, sv := range solves {
		if _, err := store.SaveSolve(sv.shape, seed, sv.moves, sv.took); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	best, err := store.BestTimes(classic, 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}

	if len(best) != 3 {
		t.Fatalf("Expected 3 classic solves, got %d", len(best))
	}

	// Sorted by duration ascending.
	wantDurations := []time.Duration{41 * time.Second, 62 * time.Second, 90 * time.Second}
	for i, want := range wantDurations {
		if best[i].Duration != want {
			t.Errorf("solve %d duration = %v, want %v", i, best[i].Duration, want)
		}
	}

	if best[0].Seed != seed.String() {
		t.Errorf("stored seed = %q, want %q", best[0].Seed, seed.String())
	}
	if best[0].Shape != "4x4" {
		t.Errorf("stored shape = %q, want 4x4", best[0].Shape)
	}

	smallSolves, err := store.BestTimes(small, 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(smallSolves) != 1 {
		t.Errorf("Expected 1 small solve, got %d", len(smallSolves))
	}
}

func TestStoreBestTimesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSolve(classic, puzzle.Seed{}, 100, time.Duration(i+1)*time.Second); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	best, err := store.BestTimes(classic, 3)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 3 {
		t.Errorf("Expected 3 solves with limit 3, got %d", len(best))
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.BestTime(classic); err != nil || ok {
		t.Errorf("BestTime on empty store = ok %v, err %v; want false, nil", ok, err)
	}

	store.SaveSolve(classic, puzzle.Seed{}, 120, 55*time.Second)
	store.SaveSolve(classic, puzzle.Seed{}, 80, 33*time.Second)

	best, ok, err := store.BestTime(classic)
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if !ok {
		t.Fatal("BestTime should report a value")
	}
	if best != 33*time.Second {
		t.Errorf("best time = %v, want 33s", best)
	}
}

func TestStoreClearSolves(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(classic, puzzle.Seed{}, 100, time.Minute)
	store.SaveSolve(small, puzzle.Seed{}, 50, 20*time.Second)

	if err := store.ClearSolves(classic); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	classicSolves, _ := store.BestTimes(classic, 10)
	if len(classicSolves) != 0 {
		t.Errorf("Expected 0 classic solves after clear, got %d", len(classicSolves))
	}

	smallSolves, _ := store.BestTimes(small, 10)
	if len(smallSolves) != 1 {
		t.Errorf("Clearing one shape should not touch another, got %d", len(smallSolves))
	}
}

func TestStoreRecentSolves(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(classic, puzzle.Seed{}, 100, time.Minute)
	store.SaveSolve(small, puzzle.Seed{}, 50, 20*time.Second)

	recent, err := store.RecentSolves(10)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("Expected 2 recent solves, got %d", len(recent))
	}
}

func TestStoreShapeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(classic, puzzle.Seed{}, 100, 60*time.Second)
	store.SaveSolve(classic, puzzle.Seed{}, 90, 40*time.Second)
	store.SaveSolve(small, puzzle.Seed{}, 30, 10*time.Second)

	stats, err := store.AllShapeStats()
	if err != nil {
		t.Fatalf("AllShapeStats() failed: %v", err)
	}

	st, ok := stats["4x4"]
	if !ok {
		t.Fatal("missing 4x4 stats")
	}
	if st.Solves != 2 {
		t.Errorf("4x4 solves = %d, want 2", st.Solves)
	}
	if st.BestTime != 40*time.Second {
		t.Errorf("4x4 best = %v, want 40s", st.BestTime)
	}
	if st.AvgTime != 50*time.Second {
		t.Errorf("4x4 avg = %v, want 50s", st.AvgTime)
	}
}
