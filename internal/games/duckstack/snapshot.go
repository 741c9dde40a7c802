package duckstack

import (
	"hash/fnv"
	"io"
	"math"
	"strconv"
)

// Snapshot is a deep copy of the observable game state.
type Snapshot struct {
	Tick      int
	Mode      Mode
	Cause     GameOverCause
	Seed      string
	Score     int
	HighScore int
	Level     int
	LevelName string

	MergeCounter int
	MergesNeeded int // landings per merge at this level, informational

	Stack   []Duck
	Current *Duck // nil when no duck is in play

	Wobble    WobbleState
	Stability float64
	Status    StabilityStatus

	Viewport Viewport
	CameraY  float64

	SpawnMs float64
	IdleMs  float64

	Particles []Particle
}

// Snapshot returns the current game state. Mutating the result does not
// affect the game.
func (g *Game) Snapshot() Snapshot {
	stability, status := g.Stability()

	snap := Snapshot{
		Tick:         g.tickCount,
		Mode:         g.mode,
		Cause:        g.cause,
		Seed:         g.levels.Seed(),
		Score:        g.score,
		HighScore:    g.highScore,
		Level:        g.level,
		LevelName:    g.levels.Level(g.level).Name,
		MergeCounter: g.merges,
		MergesNeeded: MergesNeeded(g.level),
		Stack:        g.stack.Clone(),
		Wobble:       g.wobble,
		Stability:    stability,
		Status:       status,
		Viewport:     g.viewport,
		CameraY:      g.cameraY,
		SpawnMs:      g.spawnMs,
		IdleMs:       g.idleMs,
		Particles:    append([]Particle(nil), g.particles.P...),
	}
	if g.current != nil {
		d := *g.current
		snap.Current = &d
	}
	return snap
}

// Hash returns a hash of the snapshot for determinism testing. Particles are
// cosmetic and excluded.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	writeInt(h, snap.Tick)
	writeInt(h, int(snap.Mode))
	_, _ = io.WriteString(h, string(snap.Cause))
	_, _ = io.WriteString(h, snap.Seed)
	writeInt(h, snap.Score)
	writeInt(h, snap.HighScore)
	writeInt(h, snap.Level)
	writeInt(h, snap.MergeCounter)

	writeInt(h, len(snap.Stack))
	for _, d := range snap.Stack {
		writeDuck(h, d)
	}
	if snap.Current != nil {
		writeDuck(h, *snap.Current)
	}

	writeFloat(h, snap.Wobble.Angle)
	writeFloat(h, snap.Wobble.AngularVelocity)
	writeFloat(h, snap.Wobble.Instability)
	writeFloat(h, snap.CameraY)
	writeFloat(h, snap.Viewport.DesignWidth)
	writeFloat(h, snap.SpawnMs)
	writeFloat(h, snap.IdleMs)
	return h.Sum64()
}

func writeDuck(w io.Writer, d Duck) {
	writeFloat(w, d.X)
	writeFloat(w, d.Y)
	writeFloat(w, d.W)
	writeFloat(w, d.H)
	writeInt(w, d.MergeLevel)
	_, _ = io.WriteString(w, d.Primary)
	switch st := d.State.(type) {
	case Hovering:
		writeInt(w, 1)
		writeFloat(w, st.AnchorX)
		writeFloat(w, st.Phase)
	case Dragged:
		writeInt(w, 2)
	case Falling:
		writeInt(w, 3)
		writeFloat(w, st.PrevY)
		writeFloat(w, st.VY)
	case Static:
		writeInt(w, 4)
	}
}

func writeInt(w io.Writer, v int) {
	_, _ = io.WriteString(w, strconv.Itoa(v))
	_, _ = w.Write([]byte{0})
}

func writeFloat(w io.Writer, v float64) {
	_, _ = io.WriteString(w, strconv.FormatUint(math.Float64bits(v), 16))
	_, _ = w.Write([]byte{0})
}
