package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Nested directories are created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []ScoreEntry{
		{GameID: "duckstack", Seed: "test-001", Level: 1, Score: 100},
		{GameID: "duckstack", Seed: "test-002", Level: 0, Score: 50},
		{GameID: "duckstack", Seed: "test-003", Level: 3, Score: 200, RunID: "fixed-run"},
		{GameID: "other", Seed: "x", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("duckstack", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}

	top := scores[0]
	if top.RunID != "fixed-run" || top.Seed != "test-003" || top.Level != 3 {
		t.Errorf("top entry = %+v, expected the fixed run", top)
	}
	if scores[1].RunID == "" || scores[1].RunID == scores[2].RunID {
		t.Errorf("generated run IDs not unique: %q %q", scores[1].RunID, scores[2].RunID)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestStoreDuplicateRunRejected(t *testing.T) {
	store := openTestStore(t)

	e := ScoreEntry{GameID: "duckstack", RunID: "same", Score: 10}
	if _, err := store.SaveScore(e); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(e); err == nil {
		t.Error("second save of the same run succeeded")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(ScoreEntry{GameID: "test", Score: (i + 1) * 100}) //nolint:errcheck
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("duckstack")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		store.SaveScore(ScoreEntry{GameID: "duckstack", Score: s}) //nolint:errcheck
	}

	high, err = store.HighScore("duckstack")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "duckstack", Score: 100}) //nolint:errcheck
	store.SaveScore(ScoreEntry{GameID: "other", Score: 300})     //nolint:errcheck

	if err := store.ClearScores("duckstack"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("duckstack", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other game's scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("duckstack")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(ScoreEntry{GameID: "duckstack", Level: 2, Score: 10}) //nolint:errcheck
	store.SaveScore(ScoreEntry{GameID: "duckstack", Level: 4, Score: 30}) //nolint:errcheck

	stats, err := store.GetGameStats("duckstack")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.BestLevel != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("avg %v total %d, expected 20 and 40", stats.AvgScore, stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}
