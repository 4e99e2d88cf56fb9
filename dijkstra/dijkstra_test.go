// Package dijkstra_test contains unit tests for the Dijkstra implementation,
// covering validation, directed and undirected traversal, thresholds and
// routes over generated graphs.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/legroute/builder"
	"github.com/katalvlaran/legroute/cities/citiestest"
	"github.com/katalvlaran/legroute/core"
	"github.com/katalvlaran/legroute/dijkstra"
	"github.com/katalvlaran/legroute/geo"
)

// table is a WeightFunc backed by explicit costs.
type table map[core.Edge]float64

func (t table) weight(from, to int) (float64, error) {
	w, ok := t[core.Edge{From: from, To: to}]
	if !ok {
		return 0, errors.New("no weight")
	}
	return w, nil
}

// build inserts every edge of t into a new graph.
func build(t *testing.T, w table) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for e := range w {
		_, err := g.AddEdge(e.From, e.To)
		require.NoError(t, err)
	}
	return g
}

// locator is a fixed key → coordinate map.
type locator map[int]geo.Coordinate

func (l locator) Coordinate(key int) (geo.Coordinate, bool) {
	c, ok := l[key]
	return c, ok
}

func TestDijkstra_Validation(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(1)

	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(1))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.ErrorIs(t, err, dijkstra.ErrNoWeight)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(2), dijkstra.WithWeight(dijkstra.HopWeight))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	require.Panics(t, func() { dijkstra.WithWeight(nil) })
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	w := table{{From: 0, To: 1}: -2}
	g := build(t, w)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithWeight(w.weight))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_ChordBeatsBackbone(t *testing.T) {
	// backbone 0→1→2→3 costs 3+3+3; chord 0→2 costs 4
	w := table{
		{From: 0, To: 1}: 3, {From: 1, To: 2}: 3, {From: 2, To: 3}: 3,
		{From: 0, To: 2}: 4, {From: 1, To: 3}: 7,
	}
	g := build(t, w)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithWeight(w.weight), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, map[int]float64{0: 0, 1: 3, 2: 4, 3: 7}, dist)
	require.Equal(t, 2, prev[3])
	_, hasSource := prev[0]
	require.False(t, hasSource)

	route, err := dijkstra.ShortestRoute(g, w.weight, 0, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3}, route.Keys)
	require.Equal(t, 7.0, route.Miles)
	require.Equal(t, 2, route.Hops())
}

func TestDijkstra_DirectedVersusUndirected(t *testing.T) {
	w := table{{From: 0, To: 1}: 1, {From: 1, To: 2}: 1}
	g := build(t, w)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(2), dijkstra.WithWeight(w.weight))
	require.NoError(t, err)
	require.Nil(t, prev)
	require.True(t, math.IsInf(dist[0], 1))

	_, err = dijkstra.ShortestRoute(g, w.weight, 2, 0, dijkstra.WithDirected())
	require.ErrorIs(t, err, dijkstra.ErrNoRoute)

	// both directions by default; reversed legs are costed origin→destination
	route, err := dijkstra.ShortestRoute(g, w.weight, 2, 0)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, route.Keys)
	require.Equal(t, 2.0, route.Miles)
}

func TestDijkstra_Thresholds(t *testing.T) {
	w := table{{From: 0, To: 1}: 1, {From: 1, To: 2}: 1, {From: 0, To: 2}: 10, {From: 2, To: 3}: 5}
	g := build(t, w)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithWeight(w.weight), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	require.Equal(t, 2.0, dist[2])
	require.True(t, math.IsInf(dist[3], 1))

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithWeight(w.weight), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, 2.0, dist[2])
	require.True(t, math.IsInf(dist[3], 1))
}

func TestDijkstra_SelfLoopAndSingleVertex(t *testing.T) {
	w := table{{From: 4, To: 4}: 0}
	g := build(t, w)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(4), dijkstra.WithWeight(w.weight))
	require.NoError(t, err)
	require.Equal(t, map[int]float64{4: 0}, dist)

	route, err := dijkstra.ShortestRoute(g, w.weight, 4, 4)
	require.NoError(t, err)
	require.Equal(t, []int{4}, route.Keys)
	require.Zero(t, route.Hops())

	_, err = dijkstra.ShortestRoute(g, w.weight, 4, 9)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.ShortestRoute(g, nil, 4, 4)
	require.ErrorIs(t, err, dijkstra.ErrNoWeight)
}

func TestHaversineWeight(t *testing.T) {
	loc := locator{
		0: {Lat: 0, Lon: 0},
		1: {Lat: 0, Lon: 1},
	}
	fn := dijkstra.HaversineWeight(loc)

	d, err := fn(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 69.09, d, 0.01)

	_, err = fn(0, 5)
	require.ErrorIs(t, err, dijkstra.ErrUnknownKey)
}

func TestShortestRoute_GeneratedGraph(t *testing.T) {
	res, err := builder.Generate(citiestest.Sample(), builder.DefaultParams(), builder.WithSeed(21))
	require.NoError(t, err)

	weight := dijkstra.HaversineWeight(res.Index)
	route, err := dijkstra.ShortestRoute(res.Graph, weight, res.MinAnchor, res.MaxAnchor)
	require.NoError(t, err)
	require.Equal(t, res.MinAnchor, route.Keys[0])
	require.Equal(t, res.MaxAnchor, route.Keys[len(route.Keys)-1])

	// the backbone itself is one candidate route
	backbone := 0.0
	for i := 0; i+1 < len(res.Path); i++ {
		w, err := weight(res.Path[i], res.Path[i+1])
		require.NoError(t, err)
		backbone += w
	}
	assert.LessOrEqual(t, route.Miles, backbone+1e-9)

	// and no route beats the direct great circle
	west, _ := res.Index.Coordinate(res.MinAnchor)
	east, _ := res.Index.Coordinate(res.MaxAnchor)
	assert.GreaterOrEqual(t, route.Miles+1e-9, geo.GreatCircleDistance(west, east))
}
