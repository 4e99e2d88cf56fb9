// Package dijkstra finds the cheapest route between two cities of a
// generated route graph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source key to all
//     reachable keys in O((V + E) log V) time.
//   - Edge costs come from a WeightFunc; HaversineWeight costs a leg by its
//     great-circle length in miles, HopWeight by 1.
//   - ShortestRoute wraps Dijkstra for one source/target pair, walking legs in
//     both directions unless WithDirected is given, and returns the key
//     sequence and total miles.
//
// When to use:
//
//   - Compare the generated backbone with the cheapest route the chords allow.
//   - Report how far the east anchor is from the west anchor "by leg".
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a predecessor map.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Undirected: walks legs in both directions.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource, ErrNilGraph, ErrNoWeight, ErrVertexNotFound: invalid input.
//   - ErrNegativeWeight: the WeightFunc produced a negative or NaN cost.
//   - ErrNoRoute: ShortestRoute target unreachable.
//   - ErrUnknownKey: HaversineWeight could not locate a key.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised via panic by the option constructors.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; concurrent queries on an unchanging graph are safe.
package dijkstra
