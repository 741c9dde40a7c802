package duckstack

import (
	"github.com/vovakirdan/duck-stack/internal/core"
)

// Autoplayer drives a game without a human: it confirms every prompt, moves
// each new duck over the stack top and drops it. Spread adds a deterministic
// per-landing offset in [-Spread, Spread] design pixels so runs are not all
// perfect.
type Autoplayer struct {
	Spread  float64
	landing int
}

// Next returns the input for the coming tick.
func (a *Autoplayer) Next(g *Game) core.InputFrame {
	f := core.NewInputFrame()

	switch g.Mode() {
	case ModeMenu, ModeLevelUp:
		f.Set(core.ActionConfirm)
	case ModePlaying:
		if g.controllable() == nil {
			break
		}
		f.Push(core.InputEvent{Action: core.ActionDragTo, X: g.stack.Top().X + a.offset()})
		f.Set(core.ActionDrop)
		a.landing++
	}
	return f
}

// offset walks a fixed zigzag so consecutive drops alternate sides.
func (a *Autoplayer) offset() float64 {
	if a.Spread == 0 {
		return 0
	}
	steps := []float64{0.2, -0.6, 1, -0.3, 0.7, -1, 0.4, -0.1}
	return steps[a.landing%len(steps)] * a.Spread
}
