package duckstack

import "math"

// Progression formulas. All take the zero-based level index.

// SpawnIntervalMs is the delay between a landing and the next spawn.
func SpawnIntervalMs(level int) float64 {
	return math.Max(800, 2000-math.Log(float64(level)+1)*150)
}

// AutoDropMs is how long a hovering duck waits before it drops on its own.
func AutoDropMs(level int) float64 {
	return math.Max(1500, 5000-float64(level)*200)
}

// WobbleMultiplier scales landing impulses.
func WobbleMultiplier(level int) float64 {
	return 1.0 + float64(level)*0.1
}

// MergesNeeded is the number of merges that grow the base duck from its
// configured width to the level-up width.
func MergesNeeded(level int) int {
	return 5 + int(math.Floor(math.Log2(float64(level)+2)*1.5))
}

// GrowthRate returns the per-merge growth factor minus one, chosen so that
// MergesNeeded(level) merges reach levelUpRatio*designWidth exactly.
func GrowthRate(designWidth, baseWidth, levelUpRatio float64, level int) float64 {
	target := designWidth * levelUpRatio
	return math.Pow(target/baseWidth, 1/float64(MergesNeeded(level))) - 1
}

// GrownSize returns the base duck size after mergeLevel merges.
func GrownSize(base, rate float64, mergeLevel int) float64 {
	return base * math.Pow(1+rate, float64(mergeLevel))
}

// levelUpEpsilon absorbs float error of the growth round-trip.
const levelUpEpsilon = 1e-6

// ShouldLevelUp reports whether the base duck is wide enough to end the level.
func ShouldLevelUp(baseWidth, designWidth, levelUpRatio float64) bool {
	return baseWidth+levelUpEpsilon >= designWidth*levelUpRatio
}
