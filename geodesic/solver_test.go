package geodesic_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/geodesic"
)

func undirected(t *testing.T, g *core.Graph, pairs ...[3]float64) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(int(p[0]), int(p[1]), p[2], core.WithEdgeType(core.Undirected)))
	}
}

// TestSolve_Errors verifies that invalid inputs are rejected.
func TestSolve_Errors(t *testing.T) {
	_, err := geodesic.Solve(nil, 0, nil)
	require.ErrorIs(t, err, geodesic.ErrNilSnapshot)

	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, -1))
	s := g.Snapshot(0)
	_, err = geodesic.Solve(s, 5, nil)
	require.ErrorIs(t, err, geodesic.ErrSourceOutOfRange)
	_, err = geodesic.Solve(s, 0, nil, geodesic.WithWeights())
	require.ErrorIs(t, err, geodesic.ErrNegativeWeight)

	// Unweighted mode ignores the sign.
	res, err := geodesic.Solve(s, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Dist[1])
}

// TestSolve_SourceInvariants: d(s,s)=0 and σ(s,s)=1 for every source.
func TestSolve_SourceInvariants(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g, [3]float64{1, 2, 1}, [3]float64{2, 3, 1}, [3]float64{3, 4, 1})
	require.NoError(t, g.AddVertex(9))
	s := g.Snapshot(0)

	ws := geodesic.NewWorkspace(s.N())
	for src := 0; src < s.N(); src++ {
		res, err := geodesic.Solve(s, src, ws)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Dist[src])
		assert.Equal(t, 1.0, res.Sigma[src])
		assert.Equal(t, src, res.Order[0])
	}
}

// TestSolve_PathCounts covers a diamond: two shortest paths from 1 to 4.
func TestSolve_PathCounts(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g, [3]float64{1, 2, 1}, [3]float64{1, 3, 1}, [3]float64{2, 4, 1}, [3]float64{3, 4, 1})
	s := g.Snapshot(0)

	res, err := geodesic.Solve(s, s.Index(1), nil)
	require.NoError(t, err)
	i4 := s.Index(4)
	assert.Equal(t, 2.0, res.Dist[i4])
	assert.Equal(t, 2.0, res.Sigma[i4])
	assert.ElementsMatch(t, []int{s.Index(2), s.Index(3)}, res.Preds[i4])
	assert.Equal(t, 3, res.Reached)
	assert.Equal(t, 2.0, res.Eccentricity)
	assert.Equal(t, 4.0, res.DistanceSum)
}

// TestSolve_Weighted checks Dijkstra distances, inversion, and tie counting.
func TestSolve_Weighted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(1, 3, 2))
	require.NoError(t, g.AddEdge(3, 4, 4))
	s := g.Snapshot(0)

	res, err := geodesic.Solve(s, s.Index(1), nil, geodesic.WithWeights())
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist[s.Index(3)])
	assert.Equal(t, 2.0, res.Sigma[s.Index(3)], "direct arc and 1→2→3 tie")
	assert.Equal(t, 6.0, res.Dist[s.Index(4)])

	// Inverted: lengths 1, 1, 0.5, 0.25.
	res, err = geodesic.Solve(s, s.Index(1), nil, geodesic.WithInvertWeights())
	require.NoError(t, err)
	assert.Equal(t, 0.5, res.Dist[s.Index(3)])
	assert.Equal(t, 1.0, res.Sigma[s.Index(3)])
	assert.Equal(t, 0.75, res.Dist[s.Index(4)])

	// Unweighted view of the same arcs.
	res, err = geodesic.Solve(s, s.Index(1), nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist[s.Index(4)])
}

// TestSolve_OrderIsNonDecreasing checks the settle order on a weighted graph.
func TestSolve_OrderIsNonDecreasing(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g,
		[3]float64{0, 1, 3}, [3]float64{0, 2, 1}, [3]float64{2, 1, 1},
		[3]float64{1, 3, 2}, [3]float64{2, 4, 7}, [3]float64{3, 4, 1})
	s := g.Snapshot(0)
	res, err := geodesic.Solve(s, s.Index(0), nil, geodesic.WithWeights())
	require.NoError(t, err)
	for k := 1; k < len(res.Order); k++ {
		assert.LessOrEqual(t, res.Dist[res.Order[k-1]], res.Dist[res.Order[k]])
	}
	assert.Equal(t, 5.0, res.Dist[s.Index(4)])
}

// TestAllPairs_PathGraph: diameter of a path on n vertices is n−1.
func TestAllPairs_PathGraph(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		undirected(t, g, [3]float64{float64(i), float64(i + 1), 1})
	}
	s := g.Snapshot(0)

	var visited []int
	tab, err := geodesic.AllPairs(s, geodesic.WithVisitor(func(r *geodesic.Result) {
		visited = append(visited, r.Source)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, visited)
	assert.Equal(t, 5.0, tab.Diameter)
	assert.True(t, tab.Connected)
	assert.Equal(t, 0, tab.Unreached)
	// Σ over ordered pairs of |i−j| for n=6 is 70, over 30 pairs.
	assert.InDelta(t, 70.0/30.0, tab.AverageDistance, 1e-12)

	dm, err := tab.DistanceMatrix()
	require.NoError(t, err)
	v, _ := dm.At(0, 5)
	assert.Equal(t, 5.0, v)
}

// TestAllPairs_Disconnected flags unreachable pairs and keeps Inf distances.
func TestAllPairs_Disconnected(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g, [3]float64{1, 2, 1})
	require.NoError(t, g.AddVertex(3))
	s := g.Snapshot(0)

	tab, err := geodesic.AllPairs(s)
	require.NoError(t, err)
	assert.False(t, tab.Connected)
	assert.Equal(t, 4, tab.Unreached)
	assert.True(t, math.IsInf(tab.Distance(s.Index(1), s.Index(3)), 1))
	assert.Equal(t, 0.0, tab.PathCount(s.Index(1), s.Index(3)))
	assert.Equal(t, 1.0, tab.AverageDistance)

	dm, err := tab.DistanceMatrix()
	require.NoError(t, err)
	v, _ := dm.At(s.Index(3), s.Index(1))
	assert.True(t, math.IsInf(v, 1))
}

// TestAllPairs_Trivial: zero-edge graphs are connected iff singletons.
func TestAllPairs_Trivial(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1))
	tab, err := geodesic.AllPairs(g.Snapshot(0))
	require.NoError(t, err)
	assert.True(t, tab.Connected)

	require.NoError(t, g.AddVertex(2))
	tab, err = geodesic.AllPairs(g.Snapshot(0))
	require.NoError(t, err)
	assert.False(t, tab.Connected)

	tab, err = geodesic.AllPairs(core.NewGraph().Snapshot(0))
	require.NoError(t, err)
	assert.True(t, tab.Connected)
	assert.Equal(t, 0, tab.N)
}

// TestAllPairs_Cancelled returns the context error.
func TestAllPairs_Cancelled(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g, [3]float64{1, 2, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := geodesic.AllPairs(g.Snapshot(0), geodesic.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestMinHeap_FIFOOnTies(t *testing.T) {
	var h geodesic.MinHeap[string]
	h.Push(2, "c")
	h.Push(1, "a")
	h.Push(1, "b")
	h.Push(0.5, "z")

	var got []string
	for h.Len() > 0 {
		v, _, ok := h.Pop()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []string{"z", "a", "b", "c"}, got)
	_, _, ok := h.Pop()
	assert.False(t, ok)
}
