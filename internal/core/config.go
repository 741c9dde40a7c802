package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int    // Screen width in characters
	ScreenH   int    // Screen height in characters
	ViewportW int    // Viewport width in device pixels, clamped by games into design space
	TickRate  int    // Simulation ticks per second (default 60)
	Seed      string // Opaque seed string for deterministic gameplay
}

// CellPixels is the number of device pixels a terminal column stands for.
const CellPixels = 8

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		ViewportW: 80 * CellPixels,
		TickRate:  60,
		Seed:      "", // empty means the platform picks one
	}
}

// GameState is the summary the platform needs after every tick.
type GameState struct {
	Score     int    // Current score
	HighScore int    // Best score known to the game
	Level     int    // Current level index
	Mode      string // Current mode name
	GameOver  bool   // Whether the game has ended
}

// EventKind identifies a discrete gameplay event.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventLanded
	EventScoreChanged
	EventMerged
	EventLevelUp
	EventGameOver
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventLanded:
		return "landed"
	case EventScoreChanged:
		return "score"
	case EventMerged:
		return "merged"
	case EventLevelUp:
		return "levelup"
	case EventGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Event is a discrete occurrence reported by a game tick.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Tick    int
	Perfect bool   // EventLanded
	Score   int    // EventScoreChanged
	Level   int    // EventLevelUp, EventMerged
	Name    string // EventLevelUp: new level name
	Cause   string // EventGameOver: "miss" or "topple"
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
