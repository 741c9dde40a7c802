package storage

import (
	"fmt"
	"strconv"

	"github.com/quasilyte/gdata/v2"
)

// HighScoreStore is the minimal persistence the game runner needs.
type HighScoreStore interface {
	HighScore(gameID string) (int, error)
	SaveScore(e ScoreEntry) (int64, error)
}

var _ HighScoreStore = (*Store)(nil)

const highScoreObject = "highscores"

// FileStore keeps one best score per game in the per-user data directory.
// It is the fallback when the score database cannot be opened.
type FileStore struct {
	m *gdata.Manager
}

// OpenFileStore opens the per-user data directory for appName.
func OpenFileStore(appName string) (*FileStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open data directory: %w", err)
	}
	return &FileStore{m: m}, nil
}

// HighScore returns the saved best score, or 0 if none was saved.
func (f *FileStore) HighScore(gameID string) (int, error) {
	if !f.m.ObjectPropExists(highScoreObject, gameID) {
		return 0, nil
	}
	data, err := f.m.LoadObjectProp(highScoreObject, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score: %w", err)
	}
	score, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt high score %q: %w", data, err)
	}
	return score, nil
}

// SaveScore keeps the score if it beats the saved one. Only the best score
// is kept, so the returned ID is always 0.
func (f *FileStore) SaveScore(e ScoreEntry) (int64, error) {
	best, err := f.HighScore(e.GameID)
	if err != nil {
		best = 0
	}
	if e.Score <= best {
		return 0, nil
	}
	if err := f.m.SaveObjectProp(highScoreObject, e.GameID, []byte(strconv.Itoa(e.Score))); err != nil {
		return 0, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return 0, nil
}
