package duckstack

import (
	"math"
	"testing"
)

func TestAutoDropClamp(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{0, 5000},
		{17, 1600},
		{18, 1500},
		{100, 1500},
	}

	for _, tt := range tests {
		if got := AutoDropMs(tt.level); got != tt.want {
			t.Errorf("AutoDropMs(%d) = %v, expected %v", tt.level, got, tt.want)
		}
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	if got := SpawnIntervalMs(0); got != 2000 {
		t.Errorf("SpawnIntervalMs(0) = %v, expected 2000", got)
	}
	if got := SpawnIntervalMs(1 << 20); got != 800 {
		t.Errorf("SpawnIntervalMs(huge) = %v, expected floor 800", got)
	}
	for l := 1; l < 50; l++ {
		if SpawnIntervalMs(l) > SpawnIntervalMs(l-1) {
			t.Fatalf("spawn interval grew from level %d to %d", l-1, l)
		}
	}
}

func TestMergesNeeded(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{0, 6},   // 5 + floor(1*1.5)
		{2, 8},   // 5 + floor(2*1.5)
		{6, 9},   // 5 + floor(3*1.5)
		{14, 11}, // 5 + floor(4*1.5)
	}

	for _, tt := range tests {
		if got := MergesNeeded(tt.level); got != tt.want {
			t.Errorf("MergesNeeded(%d) = %d, expected %d", tt.level, got, tt.want)
		}
	}
}

func TestWobbleMultiplier(t *testing.T) {
	if got := WobbleMultiplier(0); got != 1 {
		t.Errorf("WobbleMultiplier(0) = %v, expected 1", got)
	}
	if got := WobbleMultiplier(5); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("WobbleMultiplier(5) = %v, expected 1.5", got)
	}
}

func TestGrowthRoundTrip(t *testing.T) {
	const baseWidth, ratio = 60.0, 0.8

	for _, dw := range []float64{412, 600, 800} {
		rate := GrowthRate(dw, baseWidth, ratio, 0)
		n := MergesNeeded(0)

		grown := GrownSize(baseWidth, rate, n)
		if math.Abs(grown-dw*ratio) > 1 {
			t.Errorf("dw=%v: width after %d merges = %v, expected %v", dw, n, grown, dw*ratio)
		}
		if !ShouldLevelUp(grown, dw, ratio) {
			t.Errorf("dw=%v: ShouldLevelUp false after %d merges", dw, n)
		}
		if ShouldLevelUp(GrownSize(baseWidth, rate, n-1), dw, ratio) {
			t.Errorf("dw=%v: ShouldLevelUp true after %d merges", dw, n-1)
		}
	}
}
