package duckstack

import (
	"math"

	"github.com/vovakirdan/duck-stack/internal/config"
	"github.com/vovakirdan/duck-stack/internal/core"
	"github.com/vovakirdan/duck-stack/internal/registry"
)

// Mode is the top-level game mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeLevelUp
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeLevelUp:
		return "levelup"
	case ModeGameOver:
		return "gameover"
	default:
		return "menu"
	}
}

// GameOverCause tells why a run ended.
type GameOverCause string

const (
	CauseNone   GameOverCause = ""
	CauseMiss   GameOverCause = "miss"
	CauseTopple GameOverCause = "topple"
)

const (
	perfectBurstSpeed = 180.0
	mergeBurstSpeed   = 260.0
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the duck stacking game logic.
type Game struct {
	// Configuration
	runtime  core.RuntimeConfig
	cfg      config.DuckStackConfig
	fixedCfg bool // set by NewWithConfig, Reset keeps cfg

	// Engines
	resolver Resolver
	wobbler  WobbleEngine
	merger   MergeEngine
	levels   *LevelGenerator
	viewport Viewport

	// Game state
	mode      Mode
	cause     GameOverCause
	score     int
	highScore int
	level     int
	stack     Stack
	current   *Duck
	merges    int
	wobble    WobbleState
	cameraY   float64
	particles Particles
	tickCount int

	// Timers in milliseconds, advanced only while playing
	spawnMs float64 // since the last landing, while no duck is in play
	idleMs  float64 // since the current duck spawned or was last moved

	events []core.Event
}

// New creates a game that loads its tuning from the CLI config path on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed tuning.
func NewWithConfig(cfg config.DuckStackConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "duckstack"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Duck Stack"
}

// Reset initializes the game in the menu. The high score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		// Load game config
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.Default()
		}

		// Apply difficulty preset if set
		config.ApplyPreset(&cfg, difficultyPreset)

		g.cfg = cfg
	}

	g.resolver = NewResolver(g.cfg.Collision)
	g.wobbler = NewWobbleEngine(g.cfg.Wobble)
	g.merger = NewMergeEngine(g.cfg.Merge, g.cfg.Duck)
	g.levels = NewLevelGenerator(runtime.Seed)
	g.viewport = NewViewport(g.cfg.Viewport, float64(runtime.ViewportW))

	g.newRun()
	g.mode = ModeMenu
}

// newRun resets everything a restart resets: all but the high score, the
// seed and the viewport.
func (g *Game) newRun() {
	g.cause = CauseNone
	g.score = 0
	g.level = g.cfg.Difficulty.StartLevel
	g.merges = 0
	g.current = nil
	g.cameraY = 0
	g.spawnMs = 0
	g.idleMs = 0
	g.tickCount = 0
	g.particles.Clear()

	lvl := g.levels.Level(g.level)
	base := newStackDuck(g.viewport.DesignWidth/2, g.viewport.GroundY, g.cfg.Duck.Width, g.cfg.Duck.Height, lvl, Static{})
	g.stack = Stack{base}
	g.wobble = g.wobbler.Reset(g.stack.Len())
}

// SetHighScore seeds the persisted high score.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// Seed returns the sanitized seed the level configs derive from.
func (g *Game) Seed() string {
	return g.levels.Seed()
}

// Mode returns the current game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Cause returns why the last run ended, or CauseNone.
func (g *Game) Cause() GameOverCause {
	return g.cause
}

// Viewport returns the current viewport geometry.
func (g *Game) Viewport() Viewport {
	return g.viewport
}

// PointerX converts a screen column to a design-space x at the column centre.
func (g *Game) PointerX(col, cols int) float64 {
	if cols <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * g.viewport.DesignWidth / float64(cols)
}

// Start begins a run from the menu.
func (g *Game) Start() {
	if g.mode != ModeMenu {
		return
	}
	g.mode = ModePlaying
	g.spawn()
}

// Continue resumes play after a level-up.
func (g *Game) Continue() {
	if g.mode != ModeLevelUp {
		return
	}
	g.mode = ModePlaying
	g.spawn()
}

// Restart starts a fresh run after game over with the same seed.
func (g *Game) Restart() {
	if g.mode != ModeGameOver {
		return
	}
	g.newRun()
	g.mode = ModePlaying
	g.spawn()
}

// Move shifts the current duck horizontally by dx design pixels.
func (g *Game) Move(dx float64) {
	d := g.controllable()
	if d == nil {
		return
	}
	switch st := d.State.(type) {
	case Hovering:
		st.AnchorX = g.viewport.ClampX(st.AnchorX+dx, d.W)
		d.State = st
		d.X = g.hoverX(st, d.W)
	case Dragged:
		d.X = g.viewport.ClampX(d.X+dx, d.W)
	}
	g.idleMs = 0
}

// DragTo switches the current duck to pointer control at design x.
func (g *Game) DragTo(x float64) {
	d := g.controllable()
	if d == nil {
		return
	}
	d.State = Dragged{}
	d.X = g.viewport.ClampX(x, d.W)
	g.idleMs = 0
}

// Drop releases the current duck.
func (g *Game) Drop() {
	d := g.controllable()
	if d == nil {
		return
	}
	d.State = Falling{PrevY: d.Y}
}

// controllable returns the current duck if the player may steer it.
func (g *Game) controllable() *Duck {
	if g.mode != ModePlaying || g.current == nil {
		return nil
	}
	if g.current.IsHovering() || g.current.IsDragged() {
		return g.current
	}
	return nil
}

// Resize applies a new device viewport width, keeping ducks centred.
func (g *Game) Resize(viewportW int) {
	next := NewViewport(g.cfg.Viewport, float64(viewportW))
	dx := (next.DesignWidth - g.viewport.DesignWidth) / 2
	g.viewport = next
	g.runtime.ViewportW = viewportW
	if dx == 0 {
		return
	}

	g.stack.shiftX(dx)
	if g.current != nil {
		g.current.X += dx
		if st, ok := g.current.State.(Hovering); ok {
			st.AnchorX += dx
			g.current.State = st
		}
	}
	for i := range g.particles.P {
		g.particles.P[i].X += dx
	}
}

// Step advances the game by one tick. Queued input is applied first, in order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	for _, ev := range in.Events() {
		g.apply(ev)
	}

	if g.mode == ModePlaying {
		g.advance(1 / float64(g.tickRate()))
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// apply maps one input event onto game operations. Events that do not fit
// the current mode are ignored.
func (g *Game) apply(ev core.InputEvent) {
	switch ev.Action {
	case core.ActionConfirm:
		switch g.mode {
		case ModeMenu:
			g.Start()
		case ModeLevelUp:
			g.Continue()
		case ModeGameOver:
			g.Restart()
		}
	case core.ActionRestart:
		g.Restart()
	case core.ActionMoveLeft:
		g.Move(-g.cfg.Physics.MoveStep)
	case core.ActionMoveRight:
		g.Move(g.cfg.Physics.MoveStep)
	case core.ActionDragTo:
		g.DragTo(ev.X)
	case core.ActionDrop:
		g.Drop()
	}
}

// advance runs one playing tick of dt seconds.
func (g *Game) advance(dt float64) {
	g.tickCount++
	dtMs := dt * 1000

	if g.current == nil {
		g.spawnMs += dtMs
		if g.spawnMs >= g.levels.Level(g.level).SpawnIntervalMs {
			g.spawn()
		}
	} else {
		g.updateCurrent(dt, dtMs)
	}

	if g.mode == ModePlaying {
		g.wobble = g.wobbler.Tick(g.wobble, dt)
		if g.wobbler.Toppled(g.wobble) {
			g.gameOver(CauseTopple)
		}
	}

	g.decaySquish(dt)
	g.particles.Update(dt)
}

// updateCurrent moves the duck in play according to its state.
func (g *Game) updateCurrent(dt, dtMs float64) {
	d := g.current
	switch st := d.State.(type) {
	case Hovering:
		st.Phase += st.Speed * dt
		d.State = st
		d.X = g.hoverX(st, d.W)
		g.idle(dtMs)
	case Dragged:
		g.idle(dtMs)
	case Falling:
		g.fall(st, dt)
	}
}

// idle counts time without input and auto-drops at the level's limit.
func (g *Game) idle(dtMs float64) {
	g.idleMs += dtMs
	if g.idleMs >= AutoDropMs(g.level) {
		g.current.State = Falling{PrevY: g.current.Y}
	}
}

func (g *Game) hoverX(st Hovering, w float64) float64 {
	return g.viewport.ClampX(st.AnchorX+math.Sin(st.Phase)*g.cfg.Physics.HoverAmplitude, w)
}

// spawn puts a new hovering duck near the top of the camera.
func (g *Game) spawn() {
	lvl := g.levels.Level(g.level)
	x := g.viewport.DesignWidth / 2
	y := -g.cameraY + g.cfg.Viewport.SpawnMargin
	d := newStackDuck(x, y, g.cfg.Duck.Width, g.cfg.Duck.Height, lvl, Hovering{
		AnchorX: x,
		Speed:   g.cfg.Physics.HoverSpeed,
	})
	g.current = &d
	g.spawnMs = 0
	g.idleMs = 0
	g.emit(core.Event{Kind: core.EventSpawned})
}

// fall integrates gravity and resolves the landing check.
func (g *Game) fall(st Falling, dt float64) {
	d := g.current
	st.PrevY = d.Y
	st.VY = math.Min(st.VY+g.cfg.Physics.Gravity*dt, g.cfg.Physics.MaxFallSpeed)
	d.Y += st.VY * dt
	d.State = st

	l := g.resolver.Resolve(*d, g.stack.Top())
	switch {
	case l.Landed():
		g.land(l)
	case l.Outcome == OutcomeMiss:
		g.gameOver(CauseMiss)
	case d.Top() > g.viewport.GroundY:
		// Below the stack entirely, nothing left to land on.
		g.gameOver(CauseMiss)
	}
}

// land adds the current duck to the stack and runs scoring, wobble and merge.
func (g *Game) land(l Landing) {
	lvl := g.levels.Level(g.level)
	prevCOM := g.stack.CenterOfMass()

	duck := g.resolver.Settle(*g.current, l)
	g.stack = append(g.stack, duck)
	g.current = nil
	g.spawnMs = 0
	g.idleMs = 0

	perfect := l.Outcome == OutcomePerfect
	g.emit(core.Event{Kind: core.EventLanded, Perfect: perfect})
	g.score++
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.emit(core.Event{Kind: core.EventScoreChanged, Score: g.score})
	if perfect {
		g.particles.Burst(duck.X, duck.Top(), g.cfg.Merge.LandParticles, perfectBurstSpeed, duck.Secondary)
	}

	base := g.stack.Base()
	g.wobble = g.wobbler.OnLanding(g.wobble, LandingImpact{
		StackHeight: g.stack.Len(),
		Imbalance:   (duck.X - prevCOM) / duck.W,
		MergeLevel:  base.MergeLevel,
		COMOffset:   g.stack.COMOffset(),
		BaseWidth:   base.W,
		Multiplier:  lvl.WobbleMultiplier,
	})

	g.merges = g.merger.OnLanding(g.merges)
	g.tryMerge()
	g.updateCamera()
}

// tryMerge collapses the stack into the base once enough ducks landed.
func (g *Game) tryMerge() {
	res := g.merger.TryMerge(g.merges, g.stack, g.viewport.DesignWidth, g.level)
	g.merges = res.Counter
	if !res.Merged {
		return
	}

	g.stack = res.Stack
	g.wobble = g.wobbler.OnCollapse(g.stack.Len())

	base := g.stack.Base()
	g.particles.Burst(base.X, base.Top(), g.cfg.Merge.MergeParticles, mergeBurstSpeed, base.Primary)
	g.emit(core.Event{Kind: core.EventMerged, Level: base.MergeLevel})

	if ShouldLevelUp(base.W, g.viewport.DesignWidth, g.cfg.Merge.LevelUpRatio) {
		g.levelUp()
	}
}

// levelUp advances the level and shrinks the base back to its start size.
func (g *Game) levelUp() {
	g.level++
	lvl := g.levels.Level(g.level)

	base := g.merger.ResetBase(g.stack.Base())
	base.Primary = lvl.Primary
	base.Secondary = lvl.Secondary
	g.stack = Stack{base}
	g.merges = 0
	g.wobble = g.wobbler.Reset(g.stack.Len())
	g.current = nil
	g.spawnMs = 0
	g.idleMs = 0
	g.mode = ModeLevelUp

	g.emit(core.Event{Kind: core.EventLevelUp, Level: g.level, Name: lvl.Name})
}

func (g *Game) gameOver(cause GameOverCause) {
	g.mode = ModeGameOver
	g.cause = cause
	g.current = nil
	g.spawnMs = 0
	g.idleMs = 0
	g.emit(core.Event{Kind: core.EventGameOver, Cause: string(cause), Score: g.score})
}

// updateCamera scrolls so the landing line stays in the lower part of the view.
func (g *Game) updateCamera() {
	targetY := g.resolver.TargetY(g.stack.Top())
	g.cameraY = math.Max(0, g.cfg.Viewport.FollowRatio*g.viewport.Height-targetY)
}

// decaySquish eases every stacked duck back to its rest scale.
func (g *Game) decaySquish(dt float64) {
	k := math.Min(1, g.cfg.Physics.SquishDecay*dt)
	for i := range g.stack {
		s := &g.stack[i].Squish
		s.X += (1 - s.X) * k
		s.Y += (1 - s.Y) * k
	}
}

func (g *Game) emit(ev core.Event) {
	ev.Tick = g.tickCount
	g.events = append(g.events, ev)
}

// Stability returns the stability percentage and its status.
func (g *Game) Stability() (float64, StabilityStatus) {
	pct := StabilityOf(g.wobble)
	return pct, g.wobbler.Status(pct)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.level,
		Mode:      g.mode.String(),
		GameOver:  g.mode == ModeGameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register("duckstack", func() registry.Game {
		return New()
	})
}
