// Package converters adapts a generated core.Graph to gonum/graph so the
// route network can be inspected with gonum's topology and path packages.
//
//   - ToGonum:          directed simple graph, one node per city-key.
//   - ToGonumUndirected: the same legs read as two-way connections.
//   - ToGonumWeighted:  directed weighted graph costed by a WeightFunc.
//   - Summarize:        vertex/edge counts, weakly connected components,
//     and whether the directed graph is acyclic.
//
// gonum simple graphs reject self-loops, so converters skip them and report
// their number; Summarize counts a self-loop as a cycle.
package converters
