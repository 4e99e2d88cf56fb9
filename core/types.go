package core

import (
	"errors"

	"github.com/tidwall/btree"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a directed (From → To) pair of city-keys.
type Edge struct {
	From int
	To   int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// destinations is an insertion-ordered set of destination keys.
type destinations struct {
	order []int
	set   map[int]struct{}
}

// Graph is the vertex set plus the ordered adjacency structure.
type Graph struct {
	allowLoops bool

	vertices btree.Map[int, struct{}]

	// origins lists origin keys in registration order; adjacency holds their rows.
	origins   []int
	adjacency map[int]*destinations

	// incoming[to][from] mirrors adjacency for undirected neighbor queries.
	incoming map[int]map[int]struct{}

	edgeCount int
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int]*destinations),
		incoming:  make(map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
