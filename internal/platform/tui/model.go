package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/duck-stack/internal/core"
	"github.com/vovakirdan/duck-stack/internal/registry"
	"github.com/vovakirdan/duck-stack/internal/storage"
)

// helpRows is the space below the game screen reserved for the help bar.
const helpRows = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      storage.HighScoreStore // may be nil
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	runID      string
	inSession  bool // run inside SessionModel, back returns to its menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables score persistence.
func NewModel(game registry.Game, store storage.HighScoreStore, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
		runID:      uuid.NewString(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	if hs, ok := m.game.(registry.HighScorer); ok && m.store != nil {
		high, err := m.store.HighScore(m.game.ID())
		if err != nil {
			m.logger.Warn("could not load high score", "error", err)
		} else {
			hs.SetHighScore(high)
		}
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.saveIfBest()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.saveIfBest()
		m.backToMenu = true
		if !m.inSession {
			return m, tea.Quit
		}
		return m, nil
	case core.ActionNone:
	default:
		m.inputFrame.Push(core.InputEvent{Action: action, At: time.Since(m.started)})
	}

	return m, nil
}

// handleMouse queues pointer input when the game supports it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, ok := m.game.(registry.Pointable)
	if !ok {
		return m, nil
	}

	ev, ok := MapMouse(msg, func(col int) float64 {
		return p.PointerX(col, m.screen.Width())
	})
	if ok {
		ev.At = time.Since(m.started)
		m.inputFrame.Push(ev)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.config.ViewportW = msg.Width * core.CellPixels
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ViewportW)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logEvent(ev)
	}

	// A new run started after game over
	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.runID = uuid.NewString()
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventLevelUp:
		m.logger.Debug("level up", "level", ev.Level, "name", ev.Name, "run", m.runID)
	case core.EventGameOver:
		m.logger.Debug("game over", "cause", ev.Cause, "score", ev.Score, "run", m.runID)
	}
}

// saveScore stores the finished run. Failures are logged and ignored.
func (m Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		RunID:  m.runID,
		Level:  m.gameState.Level,
		Score:  m.gameState.Score,
	}
	if s, ok := m.game.(registry.Seeded); ok {
		entry.Seed = s.Seed()
	}

	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveIfBest stores an unfinished run when leaving it, but only if it beats
// the stored high score.
func (m *Model) saveIfBest() {
	if m.store == nil || m.scoreSaved || m.gameState.GameOver || m.gameState.Score <= 0 {
		return
	}

	high, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	if m.gameState.Score > high {
		m.saveScore()
	}
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".duckstack", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store storage.HighScoreStore, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
