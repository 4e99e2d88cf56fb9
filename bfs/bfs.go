// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/legroute/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex key with its BFS depth.
type queueItem struct {
	key   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks key visited at depth d and adds it to the queue.
func (w *walker) enqueue(key, d int) {
	w.visited[key] = true
	w.res.Depth[key] = d
	w.queue = append(w.queue, queueItem{key: key, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.key)
		if err := w.opts.OnVisit(item.key, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.key, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// neighbors returns the keys reachable from key in one hop, ascending.
func (w *walker) neighbors(key int) ([]int, error) {
	if !w.opts.Directed {
		return w.graph.NeighborIDs(key)
	}
	out := w.graph.Destinations(key)
	sort.Ints(out)
	return out, nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nbrs, err := w.neighbors(item.key)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.key, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.key, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.key
		w.enqueue(nbr, next)
	}
	return nil
}
