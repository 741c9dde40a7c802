package duckstack

import (
	"math"
	"testing"

	"github.com/vovakirdan/duck-stack/internal/config"
)

func testMerger() MergeEngine {
	cfg := config.Default()
	return NewMergeEngine(cfg.Merge, cfg.Duck)
}

// stackOf builds a base plus n ducks on top of it.
func stackOf(n int) Stack {
	s := Stack{{X: 206, Y: 860, W: 60, H: 50, Squish: Squish{1, 1}, State: Static{}}}
	for i := 0; i < n; i++ {
		top := s.Top()
		s = append(s, Duck{X: 206, Y: top.Y - top.H*0.85, W: 60, H: 50, Squish: Squish{1, 1}, State: Static{}})
	}
	return s
}

func TestTryMergeTrigger(t *testing.T) {
	m := testMerger()

	tests := []struct {
		name    string
		counter int
		ducks   int
		merged  bool
	}{
		{"threshold reached", 5, 5, true},
		{"more ducks than threshold", 5, 7, true},
		{"counter below threshold", 4, 7, false},
		{"not enough ducks above base", 5, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stackOf(tt.ducks)
			res := m.TryMerge(tt.counter, s, 412, 0)
			if res.Merged != tt.merged {
				t.Fatalf("Merged = %v, expected %v", res.Merged, tt.merged)
			}
			if !tt.merged {
				if res.Counter != tt.counter || res.Stack.Len() != s.Len() {
					t.Errorf("no-op merge changed state: counter %d, len %d", res.Counter, res.Stack.Len())
				}
				return
			}
			if res.Counter != 0 {
				t.Errorf("Counter = %d, expected 0", res.Counter)
			}
			if got, want := res.Stack.Len(), s.Len()-m.Threshold(); got != want {
				t.Errorf("stack len = %d, expected %d", got, want)
			}
			if res.Stack.Base().MergeLevel != 1 {
				t.Errorf("base MergeLevel = %d, expected 1", res.Stack.Base().MergeLevel)
			}
		})
	}
}

func TestTryMergeGrowsBase(t *testing.T) {
	m := testMerger()
	s := stackOf(5)

	res := m.TryMerge(5, s, 412, 0)
	rate := GrowthRate(412, 60, 0.8, 0)

	base := res.Stack.Base()
	if math.Abs(base.W-60*(1+rate)) > 1e-9 {
		t.Errorf("base W = %v, expected %v", base.W, 60*(1+rate))
	}
	if math.Abs(base.H-50*(1+rate)) > 1e-9 {
		t.Errorf("base H = %v, expected %v", base.H, 50*(1+rate))
	}
	if base.Y != 860 {
		t.Errorf("base Y = %v, expected the ground at 860", base.Y)
	}

	// The input stack is untouched.
	if s.Len() != 6 || s.Base().MergeLevel != 0 || s.Base().W != 60 {
		t.Errorf("TryMerge modified its input: len %d, base %+v", s.Len(), s.Base())
	}
}

func TestResetBase(t *testing.T) {
	m := testMerger()
	d := Duck{X: 206, Y: 860, W: 300, H: 250, MergeLevel: 6}

	got := m.ResetBase(d)
	if got.W != 60 || got.H != 50 || got.MergeLevel != 0 {
		t.Errorf("ResetBase = %+v, expected 60x50 at merge level 0", got)
	}
	if got.X != d.X || got.Y != d.Y {
		t.Errorf("ResetBase moved the duck to (%v, %v)", got.X, got.Y)
	}
}

func TestCenterOfMass(t *testing.T) {
	s := Stack{
		{X: 100, W: 60, H: 50},
		{X: 130, W: 60, H: 50},
	}
	if got := s.CenterOfMass(); got != 115 {
		t.Errorf("CenterOfMass = %v, expected 115", got)
	}
	if got := s.COMOffset(); got != 15 {
		t.Errorf("COMOffset = %v, expected 15", got)
	}

	// Heavier ducks pull harder.
	s[0].W = 180
	if got := s.CenterOfMass(); got >= 115 {
		t.Errorf("CenterOfMass = %v, expected below 115 with a wide base", got)
	}
}
