package duckstack

import (
	"math"

	"github.com/vovakirdan/duck-stack/internal/config"
	"github.com/vovakirdan/duck-stack/internal/core"
)

// WobbleState is the stack-wide tilt model. Instability is recomputed from
// the stack on every landing; Angle and AngularVelocity are integrated each
// tick from landing impulses and the tipping drive.
type WobbleState struct {
	Angle           float64 // radians, signed
	AngularVelocity float64 // rad/s
	Instability     float64 // >= 0
	COMOffset       float64 // px, center of mass relative to the base center
	Drive           float64 // rad/s^2 tipping acceleration from COMOffset
}

// StabilityStatus classifies a stability percentage.
type StabilityStatus int

const (
	StatusStable StabilityStatus = iota
	StatusWarning
	StatusCritical
)

// String returns the status name.
func (s StabilityStatus) String() string {
	switch s {
	case StatusWarning:
		return "warning"
	case StatusCritical:
		return "critical"
	default:
		return "stable"
	}
}

// LandingImpact is the stack geometry a landing hands to the wobble engine.
type LandingImpact struct {
	StackHeight int     // ducks in the stack after landing, base included
	Imbalance   float64 // signed offset from the prior center of mass, in landed-duck widths
	MergeLevel  int     // base duck merge level
	COMOffset   float64 // px, after landing
	BaseWidth   float64
	Multiplier  float64 // level wobble multiplier
}

// WobbleEngine integrates the wobble model with a fixed tuning.
type WobbleEngine struct {
	cfg      config.WobbleConfig
	maxAngle float64 // radians
}

// NewWobbleEngine creates an engine from the wobble config.
func NewWobbleEngine(cfg config.WobbleConfig) WobbleEngine {
	return WobbleEngine{
		cfg:      cfg,
		maxAngle: cfg.MaxAngleDeg * math.Pi / 180,
	}
}

// MaxAngle returns the display clamp angle in radians.
func (e WobbleEngine) MaxAngle() float64 {
	return e.maxAngle
}

// Instability computes the instability scalar for a stack height and a
// normalised landing imbalance.
func (e WobbleEngine) Instability(stackHeight int, imbalance float64) float64 {
	return float64(stackHeight)*e.cfg.HeightFactor + math.Abs(imbalance)*e.cfg.ImbalanceFactor
}

// SizeStability is the resistance factor of a grown base duck, 1 at merge
// level 0 and shrinking as the base grows.
func (e WobbleEngine) SizeStability(mergeLevel int) float64 {
	return 1 / (1 + float64(mergeLevel)*e.cfg.SizeFactor)
}

// Reset returns the state of a fresh stack of the given height.
func (e WobbleEngine) Reset(stackHeight int) WobbleState {
	return WobbleState{Instability: e.Instability(stackHeight, 0)}
}

// OnLanding recomputes instability for the new stack and applies the landing
// impulse. The impulse pushes toward the side the duck landed on and is
// weakened by the size stability of the base.
func (e WobbleEngine) OnLanding(w WobbleState, in LandingImpact) WobbleState {
	sizeStability := e.SizeStability(in.MergeLevel)

	w.Instability = e.Instability(in.StackHeight, in.Imbalance)
	w.AngularVelocity += core.Sign(in.Imbalance) * w.Instability * e.cfg.ImpulseGain * sizeStability * in.Multiplier
	return e.withGeometry(w, in)
}

// OnCollapse is applied after a merge: the stack collapses to the base, so the
// tilt is cleared and instability recomputed for the remaining height.
func (e WobbleEngine) OnCollapse(stackHeight int) WobbleState {
	return e.Reset(stackHeight)
}

// withGeometry sets the tipping drive from the stack's center of mass. The
// level multiplier scales it like the impulse, so later levels lean further
// for the same placement.
func (e WobbleEngine) withGeometry(w WobbleState, in LandingImpact) WobbleState {
	w.COMOffset = in.COMOffset
	w.Drive = 0
	if in.BaseWidth > 0 {
		w.Drive = e.cfg.TippingGain * (in.COMOffset / in.BaseWidth) * e.SizeStability(in.MergeLevel) * in.Multiplier
	}
	return w
}

// Stiffness returns the restoring stiffness for an instability. It weakens
// as instability rises, down to (1-StiffnessLoss) of the configured value.
func (e WobbleEngine) Stiffness(instability float64) float64 {
	return e.cfg.Stiffness * (1 - e.cfg.StiffnessLoss*core.ClampF(instability, 0, 1))
}

// Tick advances the pendulum by dt seconds with semi-implicit Euler. An
// off-center stack settles at a lean of Drive/Stiffness; stacking more weight
// on the same side pushes it past the topple angle.
func (e WobbleEngine) Tick(w WobbleState, dt float64) WobbleState {
	stiffness := e.Stiffness(w.Instability)
	accel := w.Drive - stiffness*w.Angle - e.cfg.Damping*w.AngularVelocity

	w.AngularVelocity += accel * dt
	w.Angle += w.AngularVelocity * dt
	return w
}

// Toppled reports whether the tilt passed the failure angle.
func (e WobbleEngine) Toppled(w WobbleState) bool {
	return math.Abs(w.Angle) > e.maxAngle*e.cfg.ToppleRatio
}

// StabilityOf returns the stability percentage in [0, 100].
func StabilityOf(w WobbleState) float64 {
	return core.Round6(core.ClampF(1-w.Instability, 0, 1) * 100)
}

// Status classifies a stability percentage. Thresholds are exclusive:
// exactly the warning percentage is still stable.
func (e WobbleEngine) Status(stability float64) StabilityStatus {
	switch {
	case stability < e.cfg.CriticalPercent:
		return StatusCritical
	case stability < e.cfg.WarningPercent:
		return StatusWarning
	default:
		return StatusStable
	}
}
