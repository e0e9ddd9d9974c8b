// SPDX-License-Identifier: MIT
// Package: kernels/sequence
//
// options.go — functional options and the resolved generator config.

package sequence

import (
	"errors"
	"math/rand"
)

// ErrBadSize indicates a negative requested length or one above MaxLen.
var ErrBadSize = errors.New("sequence: invalid size/length")

// MaxLen is the longest slice a generator will allocate.
const MaxLen = 1 << 30

// Deterministic defaults (named, no magic numbers).
const (
	defaultStart int   = 0
	defaultStep  int   = 1
	defaultLo    int   = -1 << 16
	defaultHi    int   = 1 << 16
	defaultSeed  int64 = 1 // used when callers pass seed == 0
)

// config aggregates all knobs used by the generators.
// It is passed by value; callers never see it.
type config struct {
	start, step int        // Ramp: start + i*step
	lo, hi      int        // Random: half-open range [lo, hi)
	rng         *rand.Rand // Random: nil → seeded with defaultSeed
}

// Option customizes a generator by mutating its config before generation.
type Option func(*config)

// WithStart sets the first value of a Ramp.
func WithStart(start int) Option {
	return func(c *config) {
		c.start = start
	}
}

// WithStep sets the increment between consecutive Ramp values.
// Zero and negative steps are allowed (constant and descending ramps).
func WithStep(step int) Option {
	return func(c *config) {
		c.step = step
	}
}

// WithSeed creates a new deterministic *rand.Rand for Random.
// seed == 0 maps to the package default so the zero value stays reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG for Random. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sequence: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange bounds Random values to [lo, hi).
// Panics if lo >= hi or the span hi-lo does not fit in an int.
func WithRange(lo, hi int) Option {
	if lo >= hi || hi-lo < 0 {
		panic("sequence: WithRange requires lo < hi")
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// newConfig applies opts in order over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		start: defaultStart,
		step:  defaultStep,
		lo:    defaultLo,
		hi:    defaultHi,
	}
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

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
