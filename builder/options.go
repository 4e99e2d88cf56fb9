// SPDX-License-Identifier: MIT
// Package: legroute/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation phases themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/legroute/metrics"
)

// BuilderOption customizes a Builder by mutating its builderConfig before the
// run starts.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for candidate draws.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithFloatSource replaces the RNG with fn, which must return values in
// [0,1). A constant 0.5 places every backbone destination at the middle of
// its region. Panics on nil.
func WithFloatSource(fn func() float64) BuilderOption {
	if fn == nil {
		panic("builder: WithFloatSource(nil)")
	}
	return func(c *builderConfig) {
		c.floatFn = fn
	}
}

// WithMaxAttempts caps the draws per backbone placement.
// Panics if n < 1.
func WithMaxAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}

// WithLogger sets the structured logger used for run progress.
// Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithMetrics records run, edge and placement metrics into m.
// Panics on nil.
func WithMetrics(m *metrics.Metrics) BuilderOption {
	if m == nil {
		panic("builder: WithMetrics(nil)")
	}
	return func(c *builderConfig) {
		c.metrics = m
	}
}
