package config

import (
	_ "embed"
)

//go:embed defaults/duckstack.yaml
var defaultDuckStackYAML []byte

// Default returns the built-in duck-stack configuration.
func Default() DuckStackConfig {
	return DuckStackConfig{
		Viewport: ViewportConfig{
			MinWidth:     412,
			MaxWidth:     800,
			Height:       900,
			GroundMargin: 40,
			SpawnMargin:  90,
			FollowRatio:  0.45,
		},
		Duck: DuckConfig{
			Width:  60,
			Height: 50,
		},
		Physics: PhysicsConfig{
			Gravity:        1800,
			MaxFallSpeed:   1200,
			HoverSpeed:     2.0,
			HoverAmplitude: 120,
			MoveStep:       24,
			SquishDecay:    6,
		},
		Collision: CollisionConfig{
			HitTolerance:     0.65,
			PerfectTolerance: 8,
			StackOverlap:     0.85,
		},
		Wobble: WobbleConfig{
			HeightFactor:    0.1,
			ImbalanceFactor: 2,
			SizeFactor:      0.5,
			ImpulseGain:     1.0,
			TippingGain:     3.0,
			Stiffness:       12,
			StiffnessLoss:   0.5,
			Damping:         4,
			MaxAngleDeg:     30,
			ToppleRatio:     0.95,
			WarningPercent:  60,
			CriticalPercent: 30,
		},
		Merge: MergeConfig{
			Threshold:      5,
			LevelUpRatio:   0.8,
			MergeParticles: 24,
			LandParticles:  10,
		},
		Difficulty: DifficultyConfig{
			StartLevel: 0,
		},
	}
}
