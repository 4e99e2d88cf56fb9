// SPDX-License-Identifier: MIT
// Package: legroute/builder
//
// impl_seed_path.go - implementation of Builder.SeedPath.
//
// Contract:
//   - segments ≥ MinSegments (else ErrTooFewSegments).
//   - Requires a random source (else ErrNeedRandSource).
//   - Path starts at minKey, ends at maxKey, has exactly segments+1 entries.
//   - Intermediate destinations fall in region i: minKey + interval·(i+1)
//     plus round(U·interval), never an existing destination of the origin.
//   - Every destination is validated against the key space before insertion.
//
// Complexity:
//   - Time: O(segments · maxAttempts) worst case; O(segments) typical.
//   - Space: O(segments) for the returned path.
//
// Determinism:
//   - Deterministic for a fixed float source / seed.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/legroute/metrics"
)

// SeedPath builds the backbone from the west anchor to the east anchor in
// segments hops and returns the Path Order (including the starting anchor).
// It may run only once per Builder.
func (b *Builder) SeedPath(segments int) ([]int, error) {
	if b.seeded {
		return nil, fmt.Errorf("%s: backbone already built: %w", MethodSeedPath, ErrConstructFailed)
	}
	if segments < MinSegments {
		return nil, fmt.Errorf("%s: segments=%d < min=%d: %w", MethodSeedPath, segments, MinSegments, ErrTooFewSegments)
	}
	draw := b.cfg.float()
	if draw == nil {
		return nil, fmt.Errorf("%s: %w", MethodSeedPath, ErrNeedRandSource)
	}
	b.seeded = true

	interval := roundHalfUp(float64(b.maxKey-b.minKey) / float64(segments))

	path := make([]int, 0, segments+1)
	origin := b.minKey
	path = append(path, origin)

	for step := 0; step < segments; step++ {
		var dest int
		if step == segments-1 {
			dest = b.maxKey
		} else {
			var err error
			if dest, err = b.place(step, origin, interval, draw); err != nil {
				return nil, fmt.Errorf("%s: %w", MethodSeedPath, err)
			}
		}

		if _, err := b.insert(MethodSeedPath, origin, dest, metrics.KindBackbone); err != nil {
			return nil, err
		}
		b.cfg.logger.Debug("backbone hop", "step", step, "from", origin, "to", dest)

		origin = dest
		path = append(path, dest)
	}

	return path, nil
}

// place rejection-samples a destination for step that origin does not
// already reach, drawing at most maxAttempts candidates.
func (b *Builder) place(step, origin, interval int, draw func() float64) (int, error) {
	if interval < 1 {
		return 0, &PlacementError{Step: step, Origin: origin, Interval: interval}
	}

	base := b.minKey + interval*(step+1)
	for attempt := 1; attempt <= b.cfg.maxAttempts; attempt++ {
		candidate := base + roundHalfUp(draw()*float64(interval))
		if !b.g.HasEdge(origin, candidate) {
			b.cfg.metrics.ObservePlacement(attempt)
			return candidate, nil
		}
	}

	b.cfg.metrics.ObservePlacementFailure(b.cfg.maxAttempts)
	return 0, &PlacementError{Step: step, Origin: origin, Interval: interval, Attempts: b.cfg.maxAttempts}
}

// roundHalfUp rounds to the nearest integer with halves toward +∞.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
