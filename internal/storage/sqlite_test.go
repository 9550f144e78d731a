package storage

import (
	"fmt"
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

func save(t *testing.T, store *Store, runID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreEntry{RunID: runID, Player: "tester", Score: score, Length: 3 + score/10}); err != nil {
		t.Fatalf("SaveScore(%s) failed: %v", runID, err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "run-a", 100)
	save(t, store, "run-b", 50)
	save(t, store, "run-c", 200)

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].RunID != "run-c" || scores[0].Player != "tester" || scores[0].Length != 23 {
		t.Errorf("unexpected top entry %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		save(t, store, fmt.Sprintf("run-%d", i), (i+1)*100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores()
	if err != nil || len(all) != 5 {
		t.Errorf("AllScores() = %d entries, err %v; expected 5", len(all), err)
	}
}

func TestStoreRejectsDuplicateRun(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "same", 10)

	if _, err := store.SaveScore(ScoreEntry{RunID: "same", Score: 20}); err == nil {
		t.Error("saving the same run twice should fail")
	}
	if _, err := store.SaveScore(ScoreEntry{Score: 20}); err == nil {
		t.Error("saving without a run id should fail")
	}
}

func TestStoreScoreByRun(t *testing.T) {
	store := openTestStore(t)
	save(t, store, "known", 70)

	entry, err := store.ScoreByRun("known")
	if err != nil || entry == nil || entry.Score != 70 {
		t.Errorf("ScoreByRun(known) = %+v, %v", entry, err)
	}

	missing, err := store.ScoreByRun("unknown")
	if err != nil || missing != nil {
		t.Errorf("ScoreByRun(unknown) = %+v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil || high != 0 {
		t.Fatalf("HighScore() on empty store = %d, %v", high, err)
	}

	save(t, store, "a", 100)
	save(t, store, "b", 300)
	save(t, store, "c", 200)

	high, err = store.HighScore()
	if err != nil || high != 300 {
		t.Errorf("HighScore() = %d, %v; expected 300", high, err)
	}

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}
