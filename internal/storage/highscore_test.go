package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	appName := fmt.Sprintf("duckstack_test_%d", time.Now().UnixNano())
	fs, err := OpenFileStore(appName)
	if err != nil {
		t.Skipf("cannot open data directory: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return fs
}

func TestFileStoreKeepsBest(t *testing.T) {
	fs := openTestFileStore(t)

	high, err := fs.HighScore("duckstack")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("fresh store high score = %d, expected 0", high)
	}

	for _, s := range []int{12, 40, 25} {
		if _, err := fs.SaveScore(ScoreEntry{GameID: "duckstack", Score: s}); err != nil {
			t.Fatalf("SaveScore(%d) failed: %v", s, err)
		}
	}

	high, err = fs.HighScore("duckstack")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("high score = %d, expected 40", high)
	}
}
