// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on route graphs.
//
// Edge costs come from a WeightFunc rather than from the graph itself: a
// generated route graph stores only which cities are joined, and the cost
// of a leg is its great-circle length (see HaversineWeight).
//
// Options:
//
//	– Source:           key of the starting vertex (required, must be in the graph).
//	– Weight:           cost of an edge (required).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– Undirected:       also traverse legs destination→origin.
//	– MaxDistance:      optional cap on distances to explore.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNoSource        if Source was not set.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNoWeight        if no WeightFunc was set.
//	– ErrVertexNotFound  if the source or target vertex does not exist in the graph.
//	– ErrNegativeWeight  if a WeightFunc returns a negative (or NaN) cost.
//	– ErrNoRoute         if ShortestRoute cannot reach the target.
//	– ErrUnknownKey      if HaversineWeight cannot locate a key.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/legroute/geo"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was provided.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoWeight indicates that no WeightFunc was provided.
	ErrNoWeight = errors.New("dijkstra: weight function not set")

	// ErrVertexNotFound indicates that the source or target key does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was produced.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoRoute indicates the target is unreachable from the source.
	ErrNoRoute = errors.New("dijkstra: no route")

	// ErrUnknownKey indicates HaversineWeight could not locate a city-key.
	ErrUnknownKey = errors.New("dijkstra: unknown city key")
)

// WeightFunc returns the cost of traversing the edge from→to.
type WeightFunc func(from, to int) (float64, error)

// Locator resolves a city-key to its coordinate. *ranking.Index satisfies it.
type Locator interface {
	Coordinate(key int) (geo.Coordinate, bool)
}

// HaversineWeight costs each leg by its great-circle length in miles.
func HaversineWeight(loc Locator) WeightFunc {
	return func(from, to int) (float64, error) {
		a, ok := loc.Coordinate(from)
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrUnknownKey, from)
		}
		b, ok := loc.Coordinate(to)
		if !ok {
			return 0, fmt.Errorf("%w: %d", ErrUnknownKey, to)
		}
		return geo.GreatCircleDistance(a, b), nil
	}
}

// HopWeight costs every edge 1.
func HopWeight(_, _ int) (float64, error) { return 1, nil }

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           int        // key of the source vertex
	hasSource        bool       // Source was set
	Weight           WeightFunc // edge cost
	ReturnPath       bool       // whether to return the predecessor map
	Undirected       bool       // traverse legs in both directions
	MaxDistance      float64    // maximum distance to explore
	InfEdgeThreshold float64    // weight at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex key. Required.
func Source(key int) Option {
	return func(o *Options) {
		o.Source = key
		o.hasSource = true
	}
}

// WithWeight sets the edge cost function. Required. Panics on nil.
func WithWeight(fn WeightFunc) Option {
	if fn == nil {
		panic("dijkstra: WithWeight(nil)")
	}
	return func(o *Options) {
		o.Weight = fn
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithUndirected lets the search traverse legs destination→origin as well.
func WithUndirected() Option {
	return func(o *Options) {
		o.Undirected = true
	}
}

// WithDirected restricts the search to legs origin→destination. Use it with
// ShortestRoute, which walks both directions by default.
func WithDirected() Option {
	return func(o *Options) {
		o.Undirected = false
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on negative values.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold on values ≤ 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - no Source, no Weight (both must be supplied),
//   - directed traversal, no predecessor map,
//   - MaxDistance and InfEdgeThreshold = +Inf.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
