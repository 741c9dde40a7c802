package duckstack

import (
	"math"
	"testing"

	"github.com/vovakirdan/duck-stack/internal/config"
)

func testWobble() WobbleEngine {
	return NewWobbleEngine(config.Default().Wobble)
}

func TestStabilityBoundaries(t *testing.T) {
	e := testWobble()

	tests := []struct {
		instability float64
		stability   float64
		status      StabilityStatus
	}{
		{0.40, 60, StatusStable},
		{0.41, 59, StatusWarning},
		{0.70, 30, StatusWarning},
		{0.71, 29, StatusCritical},
		{0, 100, StatusStable},
		{1.5, 0, StatusCritical},
	}

	for _, tt := range tests {
		pct := StabilityOf(WobbleState{Instability: tt.instability})
		if pct != tt.stability {
			t.Errorf("instability %v: stability = %v, expected %v", tt.instability, pct, tt.stability)
		}
		if got := e.Status(pct); got != tt.status {
			t.Errorf("instability %v: status = %v, expected %v", tt.instability, got, tt.status)
		}
	}
}

func TestInstability(t *testing.T) {
	e := testWobble()

	if got := e.Instability(1, 0); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("Instability(1, 0) = %v, expected 0.1", got)
	}
	// Imbalance contributes by magnitude only.
	if e.Instability(3, 0.2) != e.Instability(3, -0.2) {
		t.Error("instability depends on imbalance sign")
	}
	if got := e.Instability(3, 0.2); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("Instability(3, 0.2) = %v, expected 0.7", got)
	}
}

func TestSizeStability(t *testing.T) {
	e := testWobble()
	if got := e.SizeStability(0); got != 1 {
		t.Errorf("SizeStability(0) = %v, expected 1", got)
	}
	if got := e.SizeStability(2); got != 0.5 {
		t.Errorf("SizeStability(2) = %v, expected 0.5", got)
	}
}

func TestLandingImpulseDirection(t *testing.T) {
	e := testWobble()

	right := e.OnLanding(e.Reset(1), LandingImpact{StackHeight: 2, Imbalance: 0.3, BaseWidth: 60, Multiplier: 1})
	left := e.OnLanding(e.Reset(1), LandingImpact{StackHeight: 2, Imbalance: -0.3, BaseWidth: 60, Multiplier: 1})
	centered := e.OnLanding(e.Reset(1), LandingImpact{StackHeight: 2, BaseWidth: 60, Multiplier: 1})

	if right.AngularVelocity <= 0 {
		t.Errorf("right landing: AngularVelocity = %v, expected > 0", right.AngularVelocity)
	}
	if left.AngularVelocity != -right.AngularVelocity {
		t.Errorf("left landing: AngularVelocity = %v, expected %v", left.AngularVelocity, -right.AngularVelocity)
	}
	if centered.AngularVelocity != 0 {
		t.Errorf("centered landing: AngularVelocity = %v, expected 0", centered.AngularVelocity)
	}

	// A grown base damps the same impulse.
	grown := e.OnLanding(e.Reset(1), LandingImpact{StackHeight: 2, Imbalance: 0.3, MergeLevel: 2, BaseWidth: 60, Multiplier: 1})
	if grown.AngularVelocity >= right.AngularVelocity {
		t.Errorf("grown base: AngularVelocity = %v, expected below %v", grown.AngularVelocity, right.AngularVelocity)
	}
}

func TestWobbleSettles(t *testing.T) {
	e := testWobble()
	w := WobbleState{Instability: 0.3, AngularVelocity: 0.5}

	for i := 0; i < 600; i++ {
		w = e.Tick(w, 1.0/60)
		if e.Toppled(w) {
			t.Fatalf("balanced stack toppled at angle %v", w.Angle)
		}
	}
	if math.Abs(w.Angle) > 1e-3 {
		t.Errorf("angle after 10s = %v, expected to settle near 0", w.Angle)
	}
}

func TestWobbleTopples(t *testing.T) {
	e := testWobble()

	// Weak restoring force and a strong lean pass the topple angle.
	w := WobbleState{Instability: 1, Drive: 4}
	toppled := false
	for i := 0; i < 600; i++ {
		w = e.Tick(w, 1.0/60)
		if e.Toppled(w) {
			toppled = true
			break
		}
	}
	if !toppled {
		t.Errorf("stack did not topple, angle = %v", w.Angle)
	}

	// A mild lean on a steady stack stays up.
	w = WobbleState{Instability: 0.2, Drive: 1}
	for i := 0; i < 600; i++ {
		w = e.Tick(w, 1.0/60)
		if e.Toppled(w) {
			t.Fatalf("steady stack toppled at angle %v", w.Angle)
		}
	}
}

func TestCollapseClearsTilt(t *testing.T) {
	e := testWobble()
	w := e.OnCollapse(1)
	if w.Angle != 0 || w.AngularVelocity != 0 {
		t.Errorf("OnCollapse left tilt: %+v", w)
	}
	if math.Abs(w.Instability-0.1) > 1e-9 {
		t.Errorf("Instability = %v, expected 0.1", w.Instability)
	}
}

func TestStiffnessFloor(t *testing.T) {
	e := testWobble()

	tests := []struct {
		instability float64
		stiffness   float64
	}{
		{0, 12},
		{0.5, 9},
		{1, 6},
		{2.5, 6},
	}
	for _, tt := range tests {
		if got := e.Stiffness(tt.instability); math.Abs(got-tt.stiffness) > 1e-9 {
			t.Errorf("Stiffness(%v) = %v, expected %v", tt.instability, got, tt.stiffness)
		}
	}
}

// The steady lean of a stack is Drive/Stiffness. One landing at the edge of
// the hit zone must settle short of the topple angle.
func TestEdgeLandingSteadyLean(t *testing.T) {
	e := testWobble()
	edge := 0.65 * 60

	w := e.OnLanding(e.Reset(1), LandingImpact{
		StackHeight: 2,
		Imbalance:   edge / 60,
		COMOffset:   edge / 2,
		BaseWidth:   60,
		Multiplier:  WobbleMultiplier(0),
	})
	lean := w.Drive / e.Stiffness(w.Instability)
	if lean >= e.MaxAngle()*0.95 {
		t.Errorf("steady lean = %v rad, expected below the topple angle %v", lean, e.MaxAngle()*0.95)
	}

	peak := 0.0
	for i := 0; i < 600; i++ {
		w = e.Tick(w, 1.0/60)
		peak = math.Max(peak, math.Abs(w.Angle))
	}
	if e.Toppled(WobbleState{Angle: peak}) {
		t.Errorf("peak angle %v passed the topple angle", peak)
	}
}

func TestMultiplierScalesDrive(t *testing.T) {
	e := testWobble()
	in := LandingImpact{StackHeight: 2, Imbalance: 0.3, COMOffset: 9, BaseWidth: 60, Multiplier: 1}

	base := e.OnLanding(e.Reset(1), in)
	in.Multiplier = 1.5
	harder := e.OnLanding(e.Reset(1), in)

	if math.Abs(harder.Drive-1.5*base.Drive) > 1e-9 {
		t.Errorf("Drive = %v, expected %v", harder.Drive, 1.5*base.Drive)
	}
	if math.Abs(harder.AngularVelocity-1.5*base.AngularVelocity) > 1e-9 {
		t.Errorf("AngularVelocity = %v, expected %v", harder.AngularVelocity, 1.5*base.AngularVelocity)
	}
}
