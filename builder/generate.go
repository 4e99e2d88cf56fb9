// SPDX-License-Identifier: MIT
// Package: legroute/builder
//
// generate.go - one-call generation from a dataset.
//
// Contract:
//   - Ranks the dataset by longitude, resolves anchors from Params, builds the
//     backbone then the chords.
//   - No partial success: on any error the Result is nil.
//   - Each call tags its run with a fresh UUID (logs and Result.RunID).

package builder

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/legroute/cities"
	"github.com/katalvlaran/legroute/core"
	"github.com/katalvlaran/legroute/metrics"
	"github.com/katalvlaran/legroute/ranking"
)

// Params selects the backbone length and the anchor ranks.
type Params struct {
	Segments      int // backbone hops
	MinAnchorRank int // 0-based rank index of the west anchor
	MaxAnchorRank int // 0-based rank index of the east anchor
}

// DefaultParams returns 21 segments between rank indexes 16 and 0.
func DefaultParams() Params {
	return Params{
		Segments:      DefaultSegments,
		MinAnchorRank: DefaultMinAnchorRank,
		MaxAnchorRank: DefaultMaxAnchorRank,
	}
}

// Result is a finished generation run.
type Result struct {
	RunID     uuid.UUID
	Index     *ranking.Index
	Graph     *core.Graph
	Path      []int // backbone, minAnchor first, maxAnchor last
	MinAnchor int
	MaxAnchor int
	Chords    int // additional edges that were new
}

// Generate runs a complete generation over ds.
//
// Errors: geo.ErrParse, ErrRankGap, ErrTooFewSegments, ErrNeedRandSource,
// ErrAmbiguousPlacement, each wrapped with "Generate: ...".
func Generate(ds cities.Dataset, p Params, opts ...BuilderOption) (*Result, error) {
	cfg := newBuilderConfig(opts...)
	runID := uuid.New()
	log := cfg.logger.With("run_id", runID.String())

	res, err := generate(ds, p, runID, opts)
	if err != nil {
		cfg.metrics.ObserveRun(metrics.StatusError)
		log.Error("generation failed", "err", err)
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	cfg.metrics.ObserveRun(metrics.StatusOK)
	cfg.metrics.SetVertices(res.Graph.VertexCount())
	log.Info("generation complete",
		"min_anchor", res.MinAnchor,
		"max_anchor", res.MaxAnchor,
		"path_len", len(res.Path),
		"chords", res.Chords,
		"vertices", res.Graph.VertexCount(),
		"edges", res.Graph.EdgeCount(),
	)
	return res, nil
}

func generate(ds cities.Dataset, p Params, runID uuid.UUID, opts []BuilderOption) (*Result, error) {
	idx, err := ranking.New(ds)
	if err != nil {
		return nil, err
	}

	minKey, err := idx.KeyForRank(p.MinAnchorRank)
	if err != nil {
		return nil, fmt.Errorf("min anchor: %w", err)
	}
	maxKey, err := idx.KeyForRank(p.MaxAnchorRank)
	if err != nil {
		return nil, fmt.Errorf("max anchor: %w", err)
	}

	b, err := NewBuilder(idx, minKey, maxKey, opts...)
	if err != nil {
		return nil, err
	}
	path, err := b.SeedPath(p.Segments)
	if err != nil {
		return nil, err
	}
	chords, err := b.AdditionalEdges(path)
	if err != nil {
		return nil, err
	}

	return &Result{
		RunID:     runID,
		Index:     idx,
		Graph:     b.Graph(),
		Path:      path,
		MinAnchor: minKey,
		MaxAnchor: maxKey,
		Chords:    chords,
	}, nil
}
