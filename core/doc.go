// Package core defines the Graph type that holds a generated route network:
// the vertex set and the adjacency structure keyed by integer city-keys.
//
// The adjacency structure maps an origin key to an ordered set of destination
// keys:
//
//	adjacency[from] = {to₁, to₂, …}   (insertion order preserved)
//
// Edges are directed as inserted; downstream consumers usually read them as
// undirected travel legs, which is what NeighborIDs exposes.
//
// Why ordered?
//
//   - Serialization walks origins in the order they were first registered and,
//     within an origin, destinations in the order they were inserted. Two runs
//     with the same insertions therefore produce byte-identical output.
//   - Vertices() is sorted ascending (backed by a B-tree), independent of
//     insertion order.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex set
//	AddVertex(key int) bool              // O(log V), idempotent
//	HasVertex(key int) bool              // O(log V)
//	Vertices() []int                     // O(V), ascending
//	VertexCount() int                    // O(1)
//
//	// Adjacency
//	AddOrigin(key int)                   // registers an origin row without edges
//	AddEdge(from, to int) (bool, error)  // O(log V) amortized, idempotent
//	HasEdge(from, to int) bool           // O(1)
//	Origins() []int                      // O(V), registration order
//	Destinations(from int) []int         // O(d), insertion order
//	Edges() []Edge                       // O(E), origin order then destination order
//	EdgeCount() int                      // O(1)
//	NeighborIDs(key int) ([]int, error)  // O(d log d), undirected view, ascending
//
// Errors:
//
//	ErrLoopNotAllowed – self-loop when loops are disabled
//	ErrVertexNotFound – query on a missing vertex
//
// A Graph is owned by a single generation run and is not safe for concurrent
// mutation.
package core
