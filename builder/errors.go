// SPDX-License-Identifier: MIT
// Package: legroute/builder
//
// errors.go: sentinel and typed errors for the builder package.
//
// Error policy:
//   • Sentinel variables are the contract; callers use errors.Is.
//   • Typed errors (*PlacementError, *ranking.RankGapError) carry diagnostics
//     and report their sentinel through Is.
//   • Context is attached with %w: "<Method>: <detail>: %w".
//   • Runtime code never panics; option constructors may (nil arguments).

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/legroute/ranking"
)

// ErrTooFewSegments indicates SeedPath was asked for fewer than MinSegments hops.
var ErrTooFewSegments = errors.New("builder: segment count too small")

// ErrNeedRandSource indicates a stochastic phase ran without a random source
// (WithSeed, WithRand or WithFloatSource must be set).
var ErrNeedRandSource = errors.New("builder: random source is required")

// ErrAmbiguousPlacement indicates that bounded rejection sampling could not
// place a backbone destination: the region interval is degenerate (< 1) or
// every draw within the attempt cap collided with an existing edge.
var ErrAmbiguousPlacement = errors.New("builder: ambiguous placement")

// ErrRankGap indicates an anchor or generated key that does not resolve to a
// city record. It is the ranking package sentinel, re-exported for callers
// that only import builder.
var ErrRankGap = ranking.ErrRankGap

// ErrConstructFailed indicates misuse of the Builder lifecycle.
var ErrConstructFailed = errors.New("builder: construction failed")

// PlacementError reports a failed backbone placement.
type PlacementError struct {
	Step     int // 0-based backbone step
	Origin   int // key the walk was leaving
	Interval int // region interval in key space
	Attempts int // draws made before giving up (0 for a degenerate interval)
}

func (e *PlacementError) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("builder: step %d from origin %d: degenerate region interval %d", e.Step, e.Origin, e.Interval)
	}
	return fmt.Sprintf("builder: step %d from origin %d: no free destination in interval %d after %d attempts",
		e.Step, e.Origin, e.Interval, e.Attempts)
}

// Is reports ErrAmbiguousPlacement.
func (e *PlacementError) Is(target error) bool {
	return target == ErrAmbiguousPlacement
}
