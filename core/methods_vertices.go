// File: methods_vertices.go
// Role: Vertex set lifecycle & queries.
//
// Determinism:
//   - Vertices() returns keys sorted ascending (B-tree order).

package core

// AddVertex inserts key into the vertex set if missing and reports whether it
// was added. Re-adding an existing key is a no-op.
// Complexity: O(log V).
func (g *Graph) AddVertex(key int) bool {
	_, replaced := g.vertices.Set(key, struct{}{})
	return !replaced
}

// HasVertex reports whether key is in the vertex set.
// Complexity: O(log V).
func (g *Graph) HasVertex(key int) bool {
	_, ok := g.vertices.Get(key)
	return ok
}

// Vertices returns every key in the vertex set in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	out := make([]int, 0, g.vertices.Len())
	g.vertices.Scan(func(key int, _ struct{}) bool {
		out = append(out, key)
		return true
	})
	return out
}

// VertexCount returns the size of the vertex set.
func (g *Graph) VertexCount() int { return g.vertices.Len() }
