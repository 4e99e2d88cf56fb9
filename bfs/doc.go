// Package bfs provides breadth-first search over a generated route graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore city-keys in non-decreasing hop count from a start key.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: key → hops from start
//   - Parent: key → predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Neighbor filtering via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Undirected by default (a leg joins both cities); WithDirected follows
//     origin→destination only.
//
// Why
//
//   - Count the hops between the anchors, and see how much the chords
//     shorten the backbone.
//   - Check which cities are reachable from the west anchor.
//
// Determinism
//
//	Neighbors are expanded in ascending key order, so the visit sequence is
//	fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, west)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	    // ctx.Err(), or a hook error
//	}
//	hops := res.Depth[east]
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start key does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails.
//   - ErrNoPath               from PathTo for an unreached key.
package bfs
