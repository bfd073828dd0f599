// SPDX-License-Identifier: MIT
// Package: generator
//
// options.go: functional options for Generate.
//
// Contract:
//   • Option constructors panic on meaningless inputs (nil RNG, empty or
//     non-positive value range); Generate itself never panics.
//   • Seeding is explicit: WithSeed or WithRand. The default is seed 1.

package generator

import "math/rand"

// Value range of a non-zero cell (inclusive).
const (
	DefaultMinValue = 1
	DefaultMaxValue = 10
)

// Option customizes Generate.
type Option func(*config)

// config aggregates the generator knobs.
type config struct {
	rng     *rand.Rand
	valueFn func(*rand.Rand) int64
}

// newConfig applies options in order (later overrides earlier).
func newConfig(opts []Option) config {
	cfg := config{valueFn: uniformValue(DefaultMinValue, DefaultMaxValue)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithSeed seeds a fresh RNG (seed 0 selects the default seed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithValueRange draws non-zero values uniformly from [lo, hi].
// Panics unless 0 < lo <= hi, so a stored cell can never be zero.
func WithValueRange(lo, hi int64) Option {
	if lo <= 0 || hi < lo {
		panic("generator: WithValueRange: need 0 < lo <= hi")
	}

	return func(c *config) { c.valueFn = uniformValue(lo, hi) }
}

// uniformValue returns a draw function over the inclusive range [lo, hi].
func uniformValue(lo, hi int64) func(*rand.Rand) int64 {
	span := hi - lo + 1

	return func(r *rand.Rand) int64 { return lo + r.Int63n(span) }
}
