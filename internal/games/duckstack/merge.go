package duckstack

import (
	"github.com/vovakirdan/duck-stack/internal/config"
)

// MergeResult is the outcome of a merge attempt.
type MergeResult struct {
	Merged  bool
	Stack   Stack
	Counter int
}

// MergeEngine collapses streaks of landings into growth of the base duck.
type MergeEngine struct {
	threshold    int
	levelUpRatio float64
	baseW, baseH float64
}

// NewMergeEngine creates a merge engine from the merge and duck configs.
func NewMergeEngine(mc config.MergeConfig, dc config.DuckConfig) MergeEngine {
	return MergeEngine{
		threshold:    mc.Threshold,
		levelUpRatio: mc.LevelUpRatio,
		baseW:        dc.Width,
		baseH:        dc.Height,
	}
}

// Threshold returns the number of landings per merge.
func (m MergeEngine) Threshold() int {
	return m.threshold
}

// OnLanding counts a successful landing.
func (m MergeEngine) OnLanding(counter int) int {
	return counter + 1
}

// GrowthRate returns the per-merge growth for the design width and level.
func (m MergeEngine) GrowthRate(designWidth float64, level int) float64 {
	return GrowthRate(designWidth, m.baseW, m.levelUpRatio, level)
}

// BaseSize returns the base duck size at the given merge level.
func (m MergeEngine) BaseSize(designWidth float64, level, mergeLevel int) (w, h float64) {
	rate := m.GrowthRate(designWidth, level)
	return GrownSize(m.baseW, rate, mergeLevel), GrownSize(m.baseH, rate, mergeLevel)
}

// TryMerge fires when the counter reached the threshold and enough ducks sit
// on the base: the topmost threshold ducks are removed, the base grows by one
// merge level and the counter resets. The input stack is not modified.
func (m MergeEngine) TryMerge(counter int, stack Stack, designWidth float64, level int) MergeResult {
	if counter < m.threshold || stack.Len() < m.threshold+1 {
		return MergeResult{Stack: stack, Counter: counter}
	}

	out := stack[:stack.Len()-m.threshold].Clone()
	base := out[0]
	base.MergeLevel++
	base.W, base.H = m.BaseSize(designWidth, level, base.MergeLevel)
	base.Squish = Squish{X: 1.15, Y: 0.9}
	out[0] = base

	return MergeResult{Merged: true, Stack: out, Counter: 0}
}

// ResetBase shrinks the base back to the configured size for a new level.
func (m MergeEngine) ResetBase(base Duck) Duck {
	base.MergeLevel = 0
	base.W = m.baseW
	base.H = m.baseH
	return base
}
