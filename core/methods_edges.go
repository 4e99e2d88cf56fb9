// File: methods_edges.go
// Role: Adjacency lifecycle & queries: AddOrigin/AddEdge/HasEdge/Origins/
//       Destinations/Edges/EdgeCount/NeighborIDs.
// Determinism:
//   - Origins() follows registration order; Destinations() insertion order.
//   - Edges() = for each origin in Origins(), its Destinations() in order.
//   - NeighborIDs() is sorted ascending.

package core

import "sort"

// AddOrigin registers key as an origin row (and as a vertex) without adding
// edges. Registering an existing origin keeps its original position.
// Complexity: O(log V).
func (g *Graph) AddOrigin(key int) {
	g.AddVertex(key)
	g.row(key)
}

// row returns the destination set of from, registering it on first use.
func (g *Graph) row(from int) *destinations {
	d, ok := g.adjacency[from]
	if !ok {
		d = &destinations{set: make(map[int]struct{})}
		g.adjacency[from] = d
		g.origins = append(g.origins, from)
	}
	return d
}

// AddEdge inserts the directed edge from→to, adding both endpoints to the
// vertex set. It reports whether the edge is new; inserting an existing edge
// is a no-op and keeps its position.
//
// Returns ErrLoopNotAllowed when from == to and loops are disabled.
// Complexity: O(log V) amortized.
func (g *Graph) AddEdge(from, to int) (bool, error) {
	if from == to && !g.allowLoops {
		return false, ErrLoopNotAllowed
	}

	g.AddVertex(from)
	g.AddVertex(to)

	d := g.row(from)
	if _, dup := d.set[to]; dup {
		return false, nil
	}
	d.set[to] = struct{}{}
	d.order = append(d.order, to)

	in, ok := g.incoming[to]
	if !ok {
		in = make(map[int]struct{})
		g.incoming[to] = in
	}
	in[from] = struct{}{}

	g.edgeCount++
	return true, nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	d, ok := g.adjacency[from]
	if !ok {
		return false
	}
	_, ok = d.set[to]
	return ok
}

// Origins returns origin keys in registration order, including origins that
// have no outgoing edges.
func (g *Graph) Origins() []int {
	out := make([]int, len(g.origins))
	copy(out, g.origins)
	return out
}

// Destinations returns the destinations of from in insertion order, or nil
// when from has no row.
func (g *Graph) Destinations(from int) []int {
	d, ok := g.adjacency[from]
	if !ok {
		return nil
	}
	out := make([]int, len(d.order))
	copy(out, d.order)
	return out
}

// Edges returns all edges, origins in registration order and destinations in
// insertion order within each origin.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, from := range g.origins {
		for _, to := range g.adjacency[from].order {
			out = append(out, Edge{From: from, To: to})
		}
	}
	return out
}

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// NeighborIDs returns the keys adjacent to key in either direction, sorted
// ascending and without duplicates. A self-loop lists key itself.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(key int) ([]int, error) {
	if !g.HasVertex(key) {
		return nil, ErrVertexNotFound
	}

	seen := make(map[int]struct{})
	if d, ok := g.adjacency[key]; ok {
		for _, to := range d.order {
			seen[to] = struct{}{}
		}
	}
	for from := range g.incoming[key] {
		seen[from] = struct{}{}
	}

	out := make([]int, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Ints(out)
	return out, nil
}
