// Package dijkstra implements Dijkstra's shortest-path algorithm on route graphs.
//
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Neighbors are relaxed in ascending key order, so ties resolve the same way on every run.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/legroute/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Returns:
//
//   - dist: map from key to minimum distance (+Inf if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; the source
//     and unreachable vertices have no entry.
//   - err:  error if inputs are invalid or a weight is negative.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Weight must be set (ErrNoWeight).
//  4. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[int]float64, map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.Weight == nil {
		return nil, nil, ErrNoWeight
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64, V),
		prev:    make(map[int]int, V),
		visited: make(map[int]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// Route is a shortest route between two keys.
type Route struct {
	Keys  []int   // source first, target last
	Miles float64 // total weight
}

// Hops returns the number of legs on the route.
func (r Route) Hops() int { return len(r.Keys) - 1 }

// ShortestRoute returns the cheapest route from→to under weight. Legs are
// walked in both directions, matching how a generated graph is read; pass
// WithDirected to follow inserted direction only. Extra options are applied
// after the defaults.
func ShortestRoute(g *core.Graph, weight WeightFunc, from, to int, opts ...Option) (Route, error) {
	if weight == nil {
		return Route{}, ErrNoWeight
	}
	if g != nil && !g.HasVertex(to) {
		return Route{}, fmt.Errorf("target %d: %w", to, ErrVertexNotFound)
	}
	all := append([]Option{Source(from), WithWeight(weight), WithReturnPath(), WithUndirected()}, opts...)
	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		return Route{}, err
	}
	d := dist[to]
	if math.IsInf(d, 1) {
		return Route{}, fmt.Errorf("%d→%d: %w", from, to, ErrNoRoute)
	}

	keys := []int{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		keys = append(keys, cur)
	}
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return Route{Keys: keys, Miles: d}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[int]float64
	prev    map[int]int
	visited map[int]bool
	pq      nodePQ
}

// init sets every distance to +Inf and pushes Source=0 into the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its
// edges, until the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}
	return nil
}

// next returns the keys reachable from u in one leg, ascending.
func (r *runner) next(u int) ([]int, error) {
	if r.options.Undirected {
		return r.g.NeighborIDs(u)
	}
	out := r.g.Destinations(u)
	sort.Ints(out)
	return out, nil
}

// relax attempts to improve distances to each neighbor of u.
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	nbrs, err := r.next(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, v := range nbrs {
		from, to := u, v
		if r.options.Undirected && !r.g.HasEdge(u, v) {
			from, to = v, u
		}
		w, err := r.options.Weight(from, to)
		if err != nil {
			return fmt.Errorf("dijkstra: weight %d→%d: %w", from, to, err)
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, from, to, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then key.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
