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

func TestStoreBestScoreMissing(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("highScore")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for a missing key, got %d", best)
	}
}

func TestStoreBestScoreNeverDecreases(t *testing.T) {
	tests := []struct {
		name   string
		writes []int
		want   int
	}{
		{"single write", []int{3}, 3},
		{"rising", []int{1, 2, 5}, 5},
		{"lower ignored", []int{7, 4}, 7},
		{"equal kept", []int{4, 4}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			for _, w := range tt.writes {
				if err := store.SaveBestScore("highScore", w); err != nil {
					t.Fatalf("SaveBestScore(%d) failed: %v", w, err)
				}
			}

			got, err := store.BestScore("highScore")
			if err != nil {
				t.Fatalf("BestScore() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("BestScore() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestStoreBestScoreKeys(t *testing.T) {
	store := openTestStore(t)

	store.SaveBestScore("highScore", 10)
	store.SaveBestScore("other", 3)

	if got, _ := store.BestScore("highScore"); got != 10 {
		t.Errorf("highScore = %d, expected 10", got)
	}
	if got, _ := store.BestScore("other"); got != 3 {
		t.Errorf("other = %d, expected 3", got)
	}
}

func TestStoreBestScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveBestScore("highScore", 3)
	store.SaveBestScore("highScore", 5)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got, _ := store.BestScore("highScore"); got != 5 {
		t.Errorf("BestScore() after reopen = %d, expected 5", got)
	}
}

func TestStoreSaveAndRetrieveRounds(t *testing.T) {
	store := openTestStore(t)

	rounds := []Round{
		{Player: "local", Score: 10, EndReason: "ground", Ticks: 900},
		{Player: "local", Score: 5, EndReason: "obstacle", Ticks: 500},
		{Player: "ssh:alice", Score: 20, EndReason: "ceiling", Ticks: 1800},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	top, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(top))
	}

	if top[0].Score != 20 || top[1].Score != 10 || top[2].Score != 5 {
		t.Errorf("Rounds not in expected order: %v", top)
	}
	if top[0].Player != "ssh:alice" || top[0].EndReason != "ceiling" || top[0].Ticks != 1800 {
		t.Errorf("Round fields not preserved: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(Round{Player: "local", Score: (i + 1) * 100, EndReason: "ground"})
	}

	top, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 rounds with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Rounds not in expected order: %v", top)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRound(Round{Player: "local", Score: 1, EndReason: "ground", Ticks: 100})
	store.SaveRound(Round{Player: "local", Score: 3, EndReason: "obstacle", Ticks: 300})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 || stats.HighScore != 3 || stats.AvgScore != 2 || stats.TotalTicks != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestStoreClearScoresKeepsBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(Round{Player: "local", Score: 4, EndReason: "ground"})
	store.SaveBestScore("highScore", 4)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if top, _ := store.TopScores(10); len(top) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(top))
	}
	if best, _ := store.BestScore("highScore"); best != 4 {
		t.Errorf("Best score should survive clear, got %d", best)
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
