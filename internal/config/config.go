// Package config provides YAML-based tuning configuration and difficulty
// presets for the duck-stack game.
package config

// DuckStackConfig contains all tunable parameters of the stacking simulation.
type DuckStackConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Duck       DuckConfig       `yaml:"duck"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Collision  CollisionConfig  `yaml:"collision"`
	Wobble     WobbleConfig     `yaml:"wobble"`
	Merge      MergeConfig      `yaml:"merge"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig defines the design-space bounds.
type ViewportConfig struct {
	MinWidth     float64 `yaml:"min_width"`     // Smallest design width
	MaxWidth     float64 `yaml:"max_width"`     // Largest design width
	Height       float64 `yaml:"height"`        // Design height
	GroundMargin float64 `yaml:"ground_margin"` // Distance from the bottom edge to the ground line
	SpawnMargin  float64 `yaml:"spawn_margin"`  // Distance from the top of the camera to a spawned duck
	FollowRatio  float64 `yaml:"follow_ratio"`  // Landing line is kept below this fraction of the height
}

// DuckConfig defines the configured duck size.
type DuckConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines falling and hovering kinematics.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // px/s^2
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`  // px/s
	HoverSpeed     float64 `yaml:"hover_speed"`     // rad/s of the oscillation phase
	HoverAmplitude float64 `yaml:"hover_amplitude"` // px
	MoveStep       float64 `yaml:"move_step"`       // px per move-left/right
	SquishDecay    float64 `yaml:"squish_decay"`    // fraction of squish removed per second
}

// CollisionConfig defines landing tolerances.
type CollisionConfig struct {
	HitTolerance     float64 `yaml:"hit_tolerance"`     // fraction of the top duck width
	PerfectTolerance float64 `yaml:"perfect_tolerance"` // px
	StackOverlap     float64 `yaml:"stack_overlap"`     // fraction of the top duck height the landing line sits above its bottom
}

// WobbleConfig defines the pendulum model and stability thresholds.
type WobbleConfig struct {
	HeightFactor    float64 `yaml:"height_factor"`    // instability per stacked duck
	ImbalanceFactor float64 `yaml:"imbalance_factor"` // instability per unit of normalised imbalance
	SizeFactor      float64 `yaml:"size_factor"`      // sizeStability = 1/(1+mergeLevel*size_factor)
	ImpulseGain     float64 `yaml:"impulse_gain"`     // rad/s per unit instability
	TippingGain     float64 `yaml:"tipping_gain"`     // rad/s^2 per unit COM offset
	Stiffness       float64 `yaml:"stiffness"`        // restoring rad/s^2 per rad
	StiffnessLoss   float64 `yaml:"stiffness_loss"`   // fraction of stiffness lost at full instability
	Damping         float64 `yaml:"damping"`          // 1/s
	MaxAngleDeg     float64 `yaml:"max_angle_deg"`
	ToppleRatio     float64 `yaml:"topple_ratio"` // fraction of max angle that topples the stack
	WarningPercent  float64 `yaml:"warning_percent"`
	CriticalPercent float64 `yaml:"critical_percent"`
}

// MergeConfig defines the merge mechanic.
type MergeConfig struct {
	Threshold      int     `yaml:"threshold"`       // consecutive landings per merge
	LevelUpRatio   float64 `yaml:"level_up_ratio"`  // base width / design width that triggers level-up
	MergeParticles int     `yaml:"merge_particles"` // particles in a merge burst
	LandParticles  int     `yaml:"land_particles"`  // particles in a perfect-landing burst
}

// DifficultyConfig selects where a new game starts.
type DifficultyConfig struct {
	StartLevel int `yaml:"start_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// StartLevelForPreset returns the starting level index for a preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *DuckStackConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.StartLevel = StartLevelForPreset(preset)
}
