package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs migrations again without error
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	store.Close()
}

func TestSaveRunAndBestRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "dash", Outcome: OutcomeWon, Moves: 40, Duration: 20 * time.Second},
		{GameID: "dash", Outcome: OutcomeWon, Moves: 28, Duration: 15 * time.Second},
		{GameID: "dash", Outcome: OutcomeLost, Moves: 5},
		{GameID: "dash", Outcome: OutcomeWon, Moves: 28, Duration: 9 * time.Second, Seed: 7, Preset: "hard"},
		{GameID: "dash_maze", Outcome: OutcomeWon, Moves: 60},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("dash", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("expected 3 won runs, got %d", len(best))
	}

	expected := []struct {
		moves int
		dur   time.Duration
	}{
		{28, 9 * time.Second},
		{28, 15 * time.Second},
		{40, 20 * time.Second},
	}
	for i, e := range expected {
		if best[i].Moves != e.moves || best[i].Duration != e.dur {
			t.Errorf("best[%d] = %d moves in %v, expected %d in %v", i, best[i].Moves, best[i].Duration, e.moves, e.dur)
		}
		if !best[i].Won() {
			t.Errorf("best[%d] should be a win", i)
		}
	}
	if best[0].Seed != 7 || best[0].Preset != "hard" {
		t.Errorf("seed/preset not round-tripped: %+v", best[0])
	}
	if best[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	limited, err := store.BestRuns("dash", 1)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit 1 returned %d runs", len(limited))
	}
}

func TestSaveRunRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{GameID: "dash", Outcome: "draw"}); err == nil {
		t.Error("expected error for invalid outcome")
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i, id := range []string{"dash", "dash_maze", "dash"} {
		if _, err := store.SaveRun(Run{GameID: id, Outcome: OutcomeLost, Moves: i}); err != nil {
			t.Fatal(err)
		}
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(all))
	}
	if all[0].Moves != 2 {
		t.Errorf("newest run should come first, got moves=%d", all[0].Moves)
	}

	dash, err := store.RecentRuns("dash", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(dash) != 2 {
		t.Errorf("expected 2 dash runs, got %d", len(dash))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("dash")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestMoves != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, r := range []Run{
		{GameID: "dash", Outcome: OutcomeWon, Moves: 30},
		{GameID: "dash", Outcome: OutcomeWon, Moves: 20},
		{GameID: "dash", Outcome: OutcomeLost, Moves: 10},
		{GameID: "dash_field", Outcome: OutcomeLost, Moves: 3},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.Stats("dash")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 2 || stats.Losses() != 1 {
		t.Errorf("runs/wins/losses = %d/%d/%d, expected 3/2/1", stats.Runs, stats.Wins, stats.Losses())
	}
	if stats.BestMoves != 20 {
		t.Errorf("BestMoves = %d, expected 20", stats.BestMoves)
	}
	if stats.AvgMoves != 20 {
		t.Errorf("AvgMoves = %v, expected 20", stats.AvgMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if field := all["dash_field"]; field == nil || field.Wins != 0 || field.BestMoves != 0 {
		t.Errorf("dash_field stats = %+v", field)
	}
}

func TestClearRunsAndRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "dash", Outcome: OutcomeWon, Moves: 12})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(Run{GameID: "dash_maze", Outcome: OutcomeLost, Moves: 4}); err != nil {
		t.Fatal(err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Moves != 12 {
		t.Fatalf("RunByID() = %+v", run)
	}

	if err := store.ClearRuns("dash"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	run, err = store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Error("cleared run should be gone")
	}

	maze, err := store.RecentRuns("dash_maze", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(maze) != 1 {
		t.Error("ClearRuns should only affect the given game")
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.dash/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".dash", "runs.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}
