// Package rng provides the seeded pseudo-random source behind level configs
// and default seeds. The same seed string always yields the same sequence.
package rng

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// MaxSeedLen is the longest seed kept after sanitizing.
const MaxSeedLen = 32

// FallbackSeed is used when a seed sanitizes to the empty string.
const FallbackSeed = "duck"

// RangeError reports a draw from an empty candidate set. It signals a
// corrupted table, never a gameplay state, so it is raised with panic.
type RangeError struct {
	Op string
	N  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("rng: %s: invalid candidate count %d", e.Op, e.N)
}

// RNG is a deterministic 64-bit LCG seeded from a string.
type RNG struct {
	seed  string
	state uint64
}

// New creates an RNG for the given seed. The seed is sanitized first, so
// "Test 001!" and "test001" share a sequence.
func New(seed string) *RNG {
	clean := SanitizeSeed(seed)
	return &RNG{seed: clean, state: hashSeed(clean)}
}

// NewFromInt creates an RNG from a numeric seed, used for entropy-derived seeds.
func NewFromInt(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

func hashSeed(seed string) uint64 {
	h := fnv.New64a()
	//nolint:errcheck // hash.Hash writes never fail
	h.Write([]byte(seed))
	s := h.Sum64()
	if s == 0 {
		s = 1
	}
	return s
}

// Seed returns the sanitized seed string this RNG was created from.
func (r *RNG) Seed() string {
	return r.seed
}

// State returns the raw generator state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n). Low LCG bits are weak, so the value is
// taken from the high half.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic(&RangeError{Op: "Intn", N: n})
	}
	return int((r.Next() >> 32) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Range returns a random float64 in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Choose returns a random element of items. An empty slice panics with a
// *RangeError.
func Choose[T any](r *RNG, items []T) T {
	if len(items) == 0 {
		panic(&RangeError{Op: "Choose", N: 0})
	}
	return items[r.Intn(len(items))]
}

// SanitizeSeed lowercases the seed, keeps only [a-z0-9-] and truncates it to
// MaxSeedLen. It never fails: an empty result becomes FallbackSeed.
func SanitizeSeed(seed string) string {
	var sb strings.Builder
	for _, c := range strings.ToLower(seed) {
		if sb.Len() >= MaxSeedLen {
			break
		}
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-':
			sb.WriteRune(c)
		}
	}
	if sb.Len() == 0 {
		return FallbackSeed
	}
	return sb.String()
}

var (
	seedAdjectives = []string{"brave", "calm", "fuzzy", "golden", "lucky", "quiet", "rapid", "silly", "sunny", "tiny", "wild", "zesty"}
	seedNouns      = []string{"pond", "reed", "lily", "brook", "marsh", "puddle", "feather", "pebble", "lagoon", "drake"}
)

// NewSeed builds a readable default seed such as "brave-pond-4821" from an
// entropy value (usually the current time).
func NewSeed(entropy int64) string {
	r := NewFromInt(entropy)
	return fmt.Sprintf("%s-%s-%04d", Choose(r, seedAdjectives), Choose(r, seedNouns), r.Intn(10000))
}
