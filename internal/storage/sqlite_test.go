package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
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

	runs := []Run{
		{GameID: "bricker", Outcome: "lose", BricksDestroyed: 20, TotalBricks: 56, Ticks: 900, Seed: 1},
		{GameID: "bricker", Outcome: "win", BricksDestroyed: 56, TotalBricks: 56, LivesLeft: 2, Ticks: 4000, Seed: 2},
		{GameID: "bricker", Outcome: "lose", BricksDestroyed: 20, TotalBricks: 56, Ticks: 700, Seed: 3},
		{GameID: "bricker_chaos", Outcome: "win", BricksDestroyed: 56, TotalBricks: 56, Ticks: 100, Seed: 4},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if _, err := ulid.ParseStrict(id); err != nil {
			t.Errorf("SaveRun() returned non-ULID id %q: %v", id, err)
		}
	}

	top, err := store.TopRuns("bricker", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if !top[0].Won() || top[0].LivesLeft != 2 {
		t.Errorf("Expected the win first, got %+v", top[0])
	}
	// Ties on bricks are broken by fewer ticks
	if top[1].Seed != 3 || top[2].Seed != 1 {
		t.Errorf("Unexpected tie order: %d, %d", top[1].Seed, top[2].Seed)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(Run{GameID: "bricker", Outcome: "lose", BricksDestroyed: i}); err != nil {
			t.Fatal(err)
		}
	}

	top, err := store.TopRuns("bricker", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 5 {
		t.Fatalf("Expected 5 runs, got %d", len(top))
	}
	if top[0].BricksDestroyed != 14 {
		t.Errorf("Expected best run first, got %d", top[0].BricksDestroyed)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Minute)
		id := ulid.MustNew(ulid.Timestamp(at), ulid.DefaultEntropy()).String()
		if _, err := store.SaveRun(Run{ID: id, GameID: "bricker", Outcome: "lose", Seed: int64(i), CreatedAt: at}); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.RecentRuns("bricker", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].Seed != 2 || recent[1].Seed != 1 {
		t.Errorf("RecentRuns() = %+v", recent)
	}
	if !recent[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("CreatedAt = %v", recent[0].CreatedAt)
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)
	id, err := store.SaveRun(Run{GameID: "bricker", Outcome: "win", BricksDestroyed: 56, TotalBricks: 56})
	if err != nil {
		t.Fatal(err)
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r.ID != id || r.BricksDestroyed != 56 {
		t.Errorf("RunByID() = %+v", r)
	}

	if _, err := store.RunByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("bricker")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if stats.GamesCount != 0 {
		t.Errorf("Expected 0 games, got %d", stats.GamesCount)
	}

	for _, r := range []Run{
		{GameID: "bricker", Outcome: "win", BricksDestroyed: 56},
		{GameID: "bricker", Outcome: "lose", BricksDestroyed: 10},
		{GameID: "bricker_chaos", Outcome: "lose", BricksDestroyed: 3},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err = store.GetGameStats("bricker")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 || stats.BestBricks != 56 || stats.AvgBricks != 33 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all["bricker_chaos"].GamesCount != 1 {
		t.Errorf("GetAllGamesStats() = %+v", all)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{GameID: "bricker", Outcome: "lose"})
	store.SaveRun(Run{GameID: "bricker_chaos", Outcome: "lose"})

	if err := store.ClearRuns("bricker"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("bricker", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	runs, _ = store.TopRuns("bricker_chaos", 10)
	if len(runs) != 1 {
		t.Errorf("Other game's runs should be kept, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
