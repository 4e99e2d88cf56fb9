// SPDX-License-Identifier: MIT
// Package: legroute/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng          = nil                 (stochastic phases require a source)
//   • floatFn      = nil                 (overrides rng when set)
//   • maxAttempts  = DefaultMaxAttempts
//   • logger       = discard
//   • metrics      = nil                 (records nothing)

package builder

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/legroute/metrics"
)

// builderConfig aggregates all knobs used by the generation phases.
// It is passed by VALUE into a Builder (immutable to callers).
type builderConfig struct {
	// RNG for candidate draws; nil means "no randomness".
	rng *rand.Rand
	// floatFn replaces rng.Float64 when set (tests pin it to fixed values).
	floatFn func() float64

	// maxAttempts caps draws per backbone placement.
	maxAttempts int

	logger  *slog.Logger
	metrics *metrics.Metrics
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// float returns the configured U[0,1) source, or nil when none is set.
func (c builderConfig) float() func() float64 {
	if c.floatFn != nil {
		return c.floatFn
	}
	if c.rng != nil {
		return c.rng.Float64
	}
	return nil
}
