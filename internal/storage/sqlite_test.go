package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tilerush/tilerush/internal/config"
	"github.com/tilerush/tilerush/internal/sim"
)

var (
	cleared = sim.Outcome{Kind: sim.OutcomeFinished}
	wrecked = sim.Outcome{Kind: sim.OutcomeGameOver, Reason: sim.ReasonWrongTap}
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(config.ModeEndless, score, int64(score)*1000, wrecked); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	// A classic run must not leak onto the endless board
	if _, err := store.SaveRun(config.ModeClassic, 40, 55_000, cleared); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns(config.ModeEndless, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 endless runs, got %d", len(runs))
	}
	// Sorted by score descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Mode != config.ModeEndless {
		t.Errorf("Expected endless mode, got %q", runs[0].Mode)
	}
}

func TestStoreClassicBoardRanksByTime(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(config.ModeClassic, 40, 61_000, cleared)
	store.SaveRun(config.ModeClassic, 40, 48_000, cleared)
	// Failed attempts never make the classic board, whatever the score
	store.SaveRun(config.ModeClassic, 39, 10_000, wrecked)

	runs, err := store.TopRuns(config.ModeClassic, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("Expected 2 finished classic runs, got %d", len(runs))
	}
	if runs[0].DurationMS != 48_000 || runs[1].DurationMS != 61_000 {
		t.Errorf("Classic board not sorted by time: %v", runs)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(config.ModeEndless, (i+1)*100, 0, wrecked)
	}

	runs, err := store.TopRuns(config.ModeEndless, 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore(config.ModeEndless)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty mode, got %d", best)
	}

	store.SaveRun(config.ModeEndless, 100, 0, wrecked)
	store.SaveRun(config.ModeEndless, 300, 0, wrecked)
	store.SaveRun(config.ModeEndless, 200, 0, wrecked)

	best, err = store.BestScore(config.ModeEndless)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestTime(config.ModeClassic)
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 with no finished runs, got %d", best)
	}

	store.SaveRun(config.ModeClassic, 40, 70_000, cleared)
	store.SaveRun(config.ModeClassic, 40, 52_000, cleared)
	store.SaveRun(config.ModeClassic, 12, 5_000, wrecked) // fast but failed

	best, err = store.BestTime(config.ModeClassic)
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 52_000 {
		t.Errorf("Expected best time of 52000 ms, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(config.ModeEndless, 10, 0, wrecked)
	store.SaveRun(config.ModeEndless, 30, 0, wrecked)

	stats, err := store.Stats(config.ModeEndless)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.BestScore != 30 {
		t.Errorf("Stats = %+v, expected 2 runs with best 30", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(config.ModeEndless, 100, 0, wrecked)
	store.SaveRun(config.ModeEndless, 200, 0, wrecked)
	store.SaveRun(config.ModeClassic, 40, 50_000, cleared)

	if err := store.ClearRuns(config.ModeEndless); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	endless, _ := store.TopRuns(config.ModeEndless, 10)
	if len(endless) != 0 {
		t.Errorf("Expected 0 endless runs after clear, got %d", len(endless))
	}

	classic, _ := store.TopRuns(config.ModeClassic, 10)
	if len(classic) != 1 {
		t.Errorf("Classic runs should not be affected by clearing endless")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestOutcomeCode(t *testing.T) {
	if got := outcomeCode(cleared); got != "finished" {
		t.Errorf("outcomeCode(finished) = %q", got)
	}
	if got := outcomeCode(wrecked); got != "game_over:wrong_tap" {
		t.Errorf("outcomeCode(wrong tap) = %q", got)
	}
	missed := sim.Outcome{Kind: sim.OutcomeGameOver, Reason: sim.ReasonMissedTarget}
	if got := outcomeCode(missed); got != "game_over:missed_target" {
		t.Errorf("outcomeCode(missed) = %q", got)
	}
}
