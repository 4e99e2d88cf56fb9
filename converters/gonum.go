package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/legroute/core"
)

// ErrNilGraph is returned when a nil graph is converted.
var ErrNilGraph = errors.New("converters: graph is nil")

var inf = math.Inf(1)

// ToGonum copies g into a directed gonum graph with node IDs equal to the
// city-keys. It returns the number of self-loops that were skipped.
func ToGonum(g *core.Graph) (*simple.DirectedGraph, int, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	dg := simple.NewDirectedGraph()
	for _, v := range g.Vertices() {
		dg.AddNode(simple.Node(int64(v)))
	}
	loops := 0
	for _, e := range g.Edges() {
		if e.From == e.To {
			loops++
			continue
		}
		dg.SetEdge(simple.Edge{F: simple.Node(int64(e.From)), T: simple.Node(int64(e.To))})
	}
	return dg, loops, nil
}

// ToGonumUndirected copies g into an undirected gonum graph. Opposite legs
// collapse into one edge. It returns the number of self-loops skipped.
func ToGonumUndirected(g *core.Graph) (*simple.UndirectedGraph, int, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	ug := simple.NewUndirectedGraph()
	for _, v := range g.Vertices() {
		ug.AddNode(simple.Node(int64(v)))
	}
	loops := 0
	for _, e := range g.Edges() {
		if e.From == e.To {
			loops++
			continue
		}
		ug.SetEdge(simple.Edge{F: simple.Node(int64(e.From)), T: simple.Node(int64(e.To))})
	}
	return ug, loops, nil
}

// ToGonumWeighted copies g into a weighted directed gonum graph, costing each
// edge with weight. Missing edges weigh +Inf. Self-loops are skipped.
func ToGonumWeighted(g *core.Graph, weight func(from, to int) (float64, error)) (*simple.WeightedDirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	wg := simple.NewWeightedDirectedGraph(0, inf)
	for _, v := range g.Vertices() {
		wg.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		w, err := weight(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("converters: weight %d->%d: %w", e.From, e.To, err)
		}
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(int64(e.From)),
			T: simple.Node(int64(e.To)),
			W: w,
		})
	}
	return wg, nil
}

// Summary describes the shape of a route graph.
type Summary struct {
	Vertices   int
	Edges      int
	SelfLoops  int
	Components int  // weakly connected components
	Connected  bool // exactly one component
	Acyclic    bool // no directed cycle, self-loops included
}

// Summarize computes a Summary of g.
func Summarize(g *core.Graph) (Summary, error) {
	dg, loops, err := ToGonum(g)
	if err != nil {
		return Summary{}, err
	}
	ug, _, err := ToGonumUndirected(g)
	if err != nil {
		return Summary{}, err
	}

	comps := len(topo.ConnectedComponents(ug))
	_, sortErr := topo.Sort(dg)

	return Summary{
		Vertices:   g.VertexCount(),
		Edges:      g.EdgeCount(),
		SelfLoops:  loops,
		Components: comps,
		Connected:  comps == 1,
		Acyclic:    sortErr == nil && loops == 0,
	}, nil
}
