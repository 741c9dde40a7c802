package duckstack

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovakirdan/duck-stack/internal/rng"
)

// LevelConfig is the visual and difficulty tuple of one level.
type LevelConfig struct {
	Index            int
	Name             string
	Primary          string // hex color
	Secondary        string // hex color
	SpawnIntervalMs  float64
	WobbleMultiplier float64
}

var (
	levelAdjectives = []string{
		"bubbly", "misty", "golden", "breezy", "muddy", "sparkling", "sleepy",
		"windy", "frosty", "sunlit", "mossy", "stormy", "velvet", "crimson",
	}
	levelNouns = []string{
		"pond", "lagoon", "marsh", "creek", "bayou", "puddle", "fjord",
		"reedbed", "estuary", "millpond", "spring", "delta",
	}
)

// LevelGenerator produces level configs for one seed. Configs are generated in
// index order and cached, so level k always consumes the RNG after levels
// 0..k-1 regardless of the order callers ask for them.
type LevelGenerator struct {
	rng    *rng.RNG
	levels []LevelConfig
}

// NewLevelGenerator creates a generator for the given seed string.
func NewLevelGenerator(seed string) *LevelGenerator {
	return &LevelGenerator{rng: rng.New(seed)}
}

// Seed returns the sanitized seed of the generator.
func (g *LevelGenerator) Seed() string {
	return g.rng.Seed()
}

// Level returns the config for the given level index. Negative indices are
// treated as 0.
func (g *LevelGenerator) Level(index int) LevelConfig {
	if index < 0 {
		index = 0
	}
	for len(g.levels) <= index {
		g.levels = append(g.levels, g.generate(len(g.levels)))
	}
	return g.levels[index]
}

// Levels returns the first n level configs.
func (g *LevelGenerator) Levels(n int) []LevelConfig {
	if n <= 0 {
		return nil
	}
	g.Level(n - 1)
	out := make([]LevelConfig, n)
	copy(out, g.levels[:n])
	return out
}

func (g *LevelGenerator) generate(index int) LevelConfig {
	name := rng.Choose(g.rng, levelAdjectives) + " " + rng.Choose(g.rng, levelNouns)

	hue := g.rng.Range(0, 360)
	primary := colorful.Hsl(hue, g.rng.Range(0.65, 0.9), g.rng.Range(0.5, 0.62))
	secondaryHue := math.Mod(hue+g.rng.Range(25, 60), 360)
	secondary := colorful.Hsl(secondaryHue, g.rng.Range(0.55, 0.8), g.rng.Range(0.3, 0.42))

	return LevelConfig{
		Index:            index,
		Name:             cases.Title(language.English).String(name), // Casers are stateful, one per call
		Primary:          primary.Clamped().Hex(),
		Secondary:        secondary.Clamped().Hex(),
		SpawnIntervalMs:  SpawnIntervalMs(index),
		WobbleMultiplier: WobbleMultiplier(index),
	}
}
