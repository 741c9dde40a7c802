package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duck-stack/internal/core"
	"github.com/vovakirdan/duck-stack/internal/storage"
)

// scriptedGame ends the run on the tick after ActionDrop, scores a point on
// ActionConfirm and starts a new run on ActionRestart.
type scriptedGame struct {
	state  core.GameState
	high   int
	resets int
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Seed() string { return "pond" }
func (g *scriptedGame) SetHighScore(score int) { g.high = score }
func (g *scriptedGame) PointerX(col, _ int) float64 { return float64(col) }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "ok")
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionDrop):
		g.state = core.GameState{Score: 7, Level: 2, GameOver: true}
	case in.Has(core.ActionRestart):
		g.state = core.GameState{}
	case in.Has(core.ActionConfirm):
		g.state.Score++
	}
	return core.StepResult{State: g.state}
}

type memStore struct {
	high  int
	saved []storage.ScoreEntry
}

func (s *memStore) HighScore(string) (int, error) { return s.high, nil }

func (s *memStore) SaveScore(e storage.ScoreEntry) (int64, error) {
	s.saved = append(s.saved, e)
	return int64(len(s.saved)), nil
}

func newTestModel(game *scriptedGame, store storage.HighScoreStore) Model {
	cfg := core.DefaultConfig()
	m := NewModel(game, store, cfg, log.New(io.Discard))
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func press(t *testing.T, m Model, r string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)})
}

func TestModelLoadsHighScore(t *testing.T) {
	game := &scriptedGame{}
	newTestModel(game, &memStore{high: 42})

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
	if game.high != 42 {
		t.Errorf("high score = %d, want 42", game.high)
	}
}

func TestModelSavesScoreOncePerRun(t *testing.T) {
	game := &scriptedGame{}
	store := &memStore{}
	m := newTestModel(game, store)

	m = press(t, m, "s") // drop
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(store.saved) != 1 {
		t.Fatalf("saved %d scores, want 1", len(store.saved))
	}
	first := store.saved[0]
	if first.GameID != "scripted" || first.Score != 7 || first.Level != 2 || first.Seed != "pond" {
		t.Errorf("saved entry = %+v", first)
	}
	if first.RunID == "" {
		t.Error("saved entry has no run ID")
	}

	// Restart, then lose again: a second run with a new ID
	m = press(t, m, "r")
	m = update(t, m, TickMsg{})
	m = press(t, m, "s")
	m = update(t, m, TickMsg{})

	if len(store.saved) != 2 {
		t.Fatalf("saved %d scores, want 2", len(store.saved))
	}
	if store.saved[1].RunID == first.RunID {
		t.Error("second run reused the first run ID")
	}
}

func TestModelWithoutStore(t *testing.T) {
	game := &scriptedGame{}
	m := newTestModel(game, nil)

	m = press(t, m, "s")
	m = update(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}
}

func TestModelMouseQueuesDrag(t *testing.T) {
	m := newTestModel(&scriptedGame{}, nil)

	m = update(t, m, tea.MouseMsg{X: 12, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	events := m.inputFrame.Events()
	if len(events) != 1 || events[0].Action != core.ActionDragTo || events[0].X != 12 {
		t.Errorf("events = %+v, want one DragTo at 12", events)
	}
}

func TestModelBack(t *testing.T) {
	m := newTestModel(&scriptedGame{}, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() || cmd == nil {
		t.Error("back outside a session should quit")
	}

	m = newTestModel(&scriptedGame{}, nil)
	m.inSession = true
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() || cmd != nil {
		t.Error("back inside a session should only flag the menu")
	}
}

func TestModelSavesBestOnLeave(t *testing.T) {
	tests := []struct {
		name  string
		key   tea.KeyMsg
		high  int
		saved int
	}{
		{"quit beats high", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, 2, 1},
		{"back beats high", tea.KeyMsg{Type: tea.KeyEsc}, 2, 1},
		{"quit below high", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{high: tt.high}
			m := newTestModel(&scriptedGame{}, store)
			for i := 0; i < 3; i++ {
				m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
				m = update(t, m, TickMsg{})
			}

			m = update(t, m, tt.key)
			if len(store.saved) != tt.saved {
				t.Fatalf("saved %d scores, want %d", len(store.saved), tt.saved)
			}
			if tt.saved > 0 && store.saved[0].Score != 3 {
				t.Errorf("saved score = %d, want 3", store.saved[0].Score)
			}

			// Leaving twice does not save twice.
			update(t, m, tt.key)
			if len(store.saved) != tt.saved {
				t.Errorf("saved %d scores after a second leave, want %d", len(store.saved), tt.saved)
			}
		})
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	m := newTestModel(&scriptedGame{}, nil)
	view := m.View()

	if !strings.HasPrefix(view, "ok") {
		t.Errorf("view should start with the game screen, got %q", view[:min(len(view), 10)])
	}
	if !strings.Contains(view, "drop") {
		t.Error("view should include the help bar")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorYellow)
	s.DrawText(2, 0, "cd")
	s.DrawTextColored(0, 1, "wxyz", "#336699")

	// Tests run without a terminal, so lipgloss emits no escape codes.
	if got, want := RenderScreen(s), "abcd\nwxyz"; got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}
