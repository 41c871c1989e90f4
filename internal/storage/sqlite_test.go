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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sessions := []SessionEntry{
		{Score: 100, Spins: 10, StraightWins: 1},
		{Score: 50, Spins: 10},
		{Score: 200, Spins: 10, DiagonalWins: 1, AdjacencyWins: 1},
	}
	for _, e := range sessions {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(got))
	}

	// Should be sorted descending
	if got[0].Score != 200 || got[1].Score != 100 || got[2].Score != 50 {
		t.Errorf("Sessions not in expected order: %v", got)
	}
	if got[0].DiagonalWins != 1 || got[0].AdjacencyWins != 1 {
		t.Errorf("Win counters not round-tripped: %+v", got[0])
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(SessionEntry{Score: (i + 1) * 100, Spins: 10})
	}

	got, err := store.TopSessions(3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(got))
	}
	if got[0].Score != 500 || got[1].Score != 400 || got[2].Score != 300 {
		t.Errorf("Sessions not in expected order: %v", got)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No sessions yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveSession(SessionEntry{Score: 100, Spins: 10})
	store.SaveSession(SessionEntry{Score: 300, Spins: 10})
	store.SaveSession(SessionEntry{Score: 200, Spins: 10})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionEntry{Score: 100, Spins: 10})
	store.SaveSession(SessionEntry{Score: 200, Spins: 10})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	got, _ := store.TopSessions(10)
	if len(got) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(got))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionEntry{Score: 100, Spins: 10, StraightWins: 2})
	store.SaveSession(SessionEntry{Score: 300, Spins: 10, DiagonalWins: 1, AdjacencyWins: 3})

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", stats.Sessions)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}
	if stats.StraightWins != 2 || stats.DiagonalWins != 1 || stats.AdjacencyWins != 3 {
		t.Errorf("Win totals wrong: %+v", stats)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Verify nested directories are created on open
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
