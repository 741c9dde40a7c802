package duckstack

import (
	"math"

	"github.com/vovakirdan/duck-stack/internal/config"
)

// Outcome is the result of a landing check.
type Outcome int

const (
	OutcomeNone    Outcome = iota // landing line not crossed this tick
	OutcomeHit                    // landed inside the hit zone
	OutcomePerfect                // landed within the perfect tolerance, x snapped
	OutcomeMiss                   // crossed the line outside the hit zone
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomePerfect:
		return "perfect"
	case OutcomeMiss:
		return "miss"
	default:
		return "none"
	}
}

// Landing describes a resolved landing.
type Landing struct {
	Outcome Outcome
	X, Y    float64 // where the duck settles (hit/perfect only)
	DX      float64 // falling.X - top.X before snapping
}

// Landed reports whether the duck joins the stack.
func (l Landing) Landed() bool {
	return l.Outcome == OutcomeHit || l.Outcome == OutcomePerfect
}

// Resolver decides hit/miss/perfect for a falling duck against the stack top.
type Resolver struct {
	hitTolerance     float64
	perfectTolerance float64
	stackOverlap     float64
}

// NewResolver creates a resolver from the collision config.
func NewResolver(cfg config.CollisionConfig) Resolver {
	return Resolver{
		hitTolerance:     cfg.HitTolerance,
		perfectTolerance: cfg.PerfectTolerance,
		stackOverlap:     cfg.StackOverlap,
	}
}

// CollisionZone is the maximum horizontal offset that still lands on a duck
// of the given width. It scales linearly with width.
func (r Resolver) CollisionZone(width float64) float64 {
	return width * r.hitTolerance
}

// TargetY is the landing line above the given top duck.
func (r Resolver) TargetY(top Duck) float64 {
	return top.Y - top.H*r.stackOverlap
}

// Resolve checks the falling duck against the top of the stack. The check is
// swept: it only fires on the tick where the duck crosses the landing line
// moving down (PrevY < targetY <= Y). A duck already below the line never
// lands.
func (r Resolver) Resolve(falling, top Duck) Landing {
	f, ok := falling.State.(Falling)
	if !ok {
		return Landing{Outcome: OutcomeNone}
	}

	targetY := r.TargetY(top)
	if !(f.PrevY < targetY && targetY <= falling.Y) {
		return Landing{Outcome: OutcomeNone}
	}

	dx := falling.X - top.X
	switch {
	case math.Abs(dx) <= r.perfectTolerance:
		return Landing{Outcome: OutcomePerfect, X: top.X, Y: targetY, DX: dx}
	case math.Abs(dx) <= r.CollisionZone(top.W):
		return Landing{Outcome: OutcomeHit, X: falling.X, Y: targetY, DX: dx}
	default:
		return Landing{Outcome: OutcomeMiss, DX: dx}
	}
}

// Settle converts the falling duck into its stacked form for a landed result.
func (r Resolver) Settle(falling Duck, l Landing) Duck {
	falling.X = l.X
	falling.Y = l.Y
	falling.State = Static{}
	falling.Squish = Squish{X: 1.25, Y: 0.75}
	return falling
}
