package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/legroute/bfs"
	"github.com/katalvlaran/legroute/builder"
	"github.com/katalvlaran/legroute/cities/citiestest"
	"github.com/katalvlaran/legroute/core"
)

// chain builds 0→1→…→n-1.
func chain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < n; i++ {
		_, err := g.AddEdge(i, i+1)
		require.NoError(t, err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 3)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g.AddVertex(3)
	_, err = bfs.BFS(g, 3, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(7)
	res, err := bfs.BFS(g, 7)
	require.NoError(t, err)
	require.Equal(t, []int{7}, res.Order)
	require.Equal(t, 0, res.Depth[7])
	require.Zero(t, res.MaxDepth())

	path, err := res.PathTo(7)
	require.NoError(t, err)
	require.Equal(t, []int{7}, path)
}

// TestBFS_UndirectedVersusDirected walks a chain from its far end.
func TestBFS_UndirectedVersusDirected(t *testing.T) {
	g := chain(t, 5)

	res, err := bfs.BFS(g, 4)
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 2, 1, 0}, res.Order)
	require.Equal(t, 4, res.Depth[0])

	res, err = bfs.BFS(g, 4, bfs.WithDirected())
	require.NoError(t, err)
	require.Equal(t, []int{4}, res.Order)
	require.False(t, res.Reached(0))
	_, err = res.PathTo(0)
	require.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_ChordsShortenBackbone checks hop counts on a path with skip-one chords.
func TestBFS_ChordsShortenBackbone(t *testing.T) {
	g := chain(t, 7)
	for i := 0; i+2 < 7; i++ {
		_, err := g.AddEdge(i, i+2)
		require.NoError(t, err)
	}

	res, err := bfs.BFS(g, 0, bfs.WithDirected())
	require.NoError(t, err)
	require.Equal(t, 3, res.Depth[6])

	path, err := res.PathTo(6)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4, 6}, path)
}

// TestBFS_MaxDepthAndFilter covers depth limiting and neighbor filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(t, 6)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 3 }))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)
}

// TestBFS_HookAndCancel covers OnVisit errors and context cancellation.
func TestBFS_HookAndCancel(t *testing.T) {
	g := chain(t, 4)
	stop := errors.New("stop")

	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(key, _ int) error {
		if key == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestBFS_GeneratedGraph reaches the east anchor from the west anchor.
func TestBFS_GeneratedGraph(t *testing.T) {
	res, err := builder.Generate(citiestest.Sample(), builder.DefaultParams(), builder.WithSeed(3))
	require.NoError(t, err)

	walk, err := bfs.BFS(res.Graph, res.MinAnchor, bfs.WithDirected())
	require.NoError(t, err)
	require.True(t, walk.Reached(res.MaxAnchor))

	// chords at least halve the backbone, rounded up
	hops := walk.Depth[res.MaxAnchor]
	assert.LessOrEqual(t, hops, (len(res.Path)-1+1)/2)

	path, err := walk.PathTo(res.MaxAnchor)
	require.NoError(t, err)
	require.Equal(t, res.MinAnchor, path[0])
	require.Equal(t, res.MaxAnchor, path[len(path)-1])
	for i := 0; i+1 < len(path); i++ {
		assert.True(t, res.Graph.HasEdge(path[i], path[i+1]))
	}
}
