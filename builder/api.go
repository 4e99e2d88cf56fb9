// SPDX-License-Identifier: MIT
// Package: legroute/builder
//
// api.go - Builder lifecycle and public entry-points.
//
// Design contract (strict):
//   - One Builder per run. NewBuilder creates the graph and registers both
//     anchors as origins; SeedPath runs once; AdditionalEdges may run any
//     number of times (idempotent).
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same key space, anchors, options and seed ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel or typed errors.
//
// Practical hints:
//   - Use WithSeed(...) to freeze the backbone; WithFloatSource(func() float64
//     { return 0.5 }) pins every destination to the middle of its region.
//   - Generate (generate.go) is the one-call path from a dataset to a Result.

package builder

import (
	"fmt"

	"github.com/katalvlaran/legroute/core"
	"github.com/katalvlaran/legroute/ranking"
)

// KeySpace reports whether a city-key resolves to a real record.
// *ranking.Index satisfies it.
type KeySpace interface {
	Has(key int) bool
}

// Builder owns the graph of a single generation run.
type Builder struct {
	keys   KeySpace
	minKey int
	maxKey int
	cfg    builderConfig

	g      *core.Graph
	seeded bool
}

// NewBuilder validates both anchors against keys and returns a Builder whose
// graph already lists minKey and maxKey as origins (min first).
//
// Errors:
//   - ErrConstructFailed when keys is nil.
//   - *ranking.RankGapError (Is ErrRankGap) when an anchor is not in keys.
//
// Complexity: O(len(opts)).
func NewBuilder(keys KeySpace, minKey, maxKey int, opts ...BuilderOption) (*Builder, error) {
	if keys == nil {
		return nil, fmt.Errorf("%s: nil key space: %w", MethodNewBuilder, ErrConstructFailed)
	}
	for _, k := range [...]int{minKey, maxKey} {
		if !keys.Has(k) {
			return nil, fmt.Errorf("%s: anchor: %w", MethodNewBuilder,
				&ranking.RankGapError{Rank: -1, Key: k, Reason: "anchor key outside dataset"})
		}
	}

	b := &Builder{
		keys:   keys,
		minKey: minKey,
		maxKey: maxKey,
		cfg:    newBuilderConfig(opts...),
		g:      core.NewGraph(core.WithLoops()),
	}
	b.g.AddOrigin(minKey)
	b.g.AddOrigin(maxKey)

	return b, nil
}

// Graph returns the graph under construction. Callers must treat it as
// read-only.
func (b *Builder) Graph() *core.Graph { return b.g }

// Anchors returns the west (min) and east (max) anchor keys.
func (b *Builder) Anchors() (minKey, maxKey int) { return b.minKey, b.maxKey }

// insert validates both endpoints against the key space and adds from→to.
func (b *Builder) insert(method string, from, to int, kind string) (bool, error) {
	for _, k := range [...]int{from, to} {
		if !b.keys.Has(k) {
			return false, fmt.Errorf("%s: edge %d->%d: %w", method, from, to,
				&ranking.RankGapError{Rank: -1, Key: k, Reason: "generated key outside dataset"})
		}
	}
	added, err := b.g.AddEdge(from, to)
	if err != nil {
		return false, fmt.Errorf("%s: AddEdge(%d, %d): %w", method, from, to, err)
	}
	if added {
		b.cfg.metrics.ObserveEdge(kind)
	}
	return added, nil
}
