// SPDX-License-Identifier: MIT
package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/socnet/analysis"
	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/cluster"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/layout"
	"github.com/katalvlaran/socnet/matrix"
)

func undirected(t *testing.T, g *core.Graph, pairs ...[2]int) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1], 1, core.WithEdgeType(core.Undirected)))
	}
}

func network(t *testing.T, g *core.Graph) *analysis.Network {
	t.Helper()
	n, err := analysis.New(g)
	require.NoError(t, err)

	return n
}

// pathGraph is 1-2-3-4-5.
func pathGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	undirected(t, g, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5})

	return g
}

// twoTriangles is {1,2,3} and {4,5,6} with no cross ties.
func twoTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	undirected(t, g,
		[2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3},
		[2]int{4, 5}, [2]int{5, 6}, [2]int{4, 6})

	return g
}

func TestNew_NilGraph(t *testing.T) {
	_, err := analysis.New(nil)
	require.ErrorIs(t, err, analysis.ErrNilGraph)
}

// TestDistanceQueries covers the convenience queries on the default view.
func TestDistanceQueries(t *testing.T) {
	n := network(t, pathGraph(t))

	assert.Equal(t, 4.0, n.Distance(1, 5))
	assert.Equal(t, 0.0, n.Distance(3, 3))
	assert.Equal(t, 1.0, n.ShortestPathCount(1, 5))
	assert.Equal(t, 4.0, n.Diameter())
	assert.InDelta(t, 2.0, n.AverageDistance(), 1e-12)
	assert.True(t, n.Connected())

	// Absent ids degrade to the unreachable sentinels.
	assert.True(t, math.IsInf(n.Distance(1, 99), 1))
	assert.Equal(t, 0.0, n.ShortestPathCount(99, 1))
}

func TestShortestPathCount_Diamond(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 4}, [2]int{3, 4})
	n := network(t, g)

	assert.Equal(t, 2.0, n.ShortestPathCount(1, 4))
	assert.Equal(t, 2.0, n.Distance(1, 4))
}

// TestCache_InvalidatedByGeneration: repeated queries hit the cache until the
// graph mutates, after which the next query recomputes.
func TestCache_InvalidatedByGeneration(t *testing.T) {
	g := pathGraph(t)
	n := network(t, g)

	assert.Equal(t, 4.0, n.Distance(1, 5))
	_, misses := n.CacheStats()

	assert.Equal(t, 3.0, n.Distance(2, 5))
	hits, again := n.CacheStats()
	assert.Equal(t, misses, again, "second query must not recompute")
	assert.Positive(t, hits)

	undirected(t, g, [2]int{5, 6})
	assert.Equal(t, 5.0, n.Distance(1, 6))
	_, after := n.CacheStats()
	assert.Greater(t, after, misses)
	assert.False(t, math.IsInf(n.Distance(6, 1), 1))
}

func TestCentrality_Memoized(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4})
	n := network(t, g)
	p := analysis.CentralityParams{View: analysis.DefaultView()}

	r1, err := n.Centrality(centrality.Betweenness, p)
	require.NoError(t, err)
	r2, err := n.Centrality(centrality.Betweenness, p)
	require.NoError(t, err)
	assert.Same(t, r1, r2)
	assert.InDelta(t, 1.0, r1.Scores[0].Std, 1e-9)

	// A different projection is a different entry.
	w, err := n.Centrality(centrality.Betweenness, analysis.CentralityParams{
		View: analysis.View{Relation: analysis.CurrentRelation, Weighted: true},
	})
	require.NoError(t, err)
	assert.NotSame(t, r1, w)

	undirected(t, g, [2]int{1, 2})
	r3, err := n.Centrality(centrality.Betweenness, p)
	require.NoError(t, err)
	assert.NotSame(t, r1, r3)
	assert.Less(t, r3.Scores[0].Std, 1.0)
}

// TestCentrality_Information: a disconnected graph is singular and the error
// is not cached; dropping isolates changes the projection.
func TestCentrality_Information(t *testing.T) {
	n := network(t, twoTriangles(t))
	p := analysis.CentralityParams{View: analysis.DefaultView()}

	r, err := n.Centrality(centrality.Information, p)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.NotNil(t, r)
	_, misses := n.CacheStats()
	_, err = n.Centrality(centrality.Information, p)
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, again := n.CacheStats()
	assert.Greater(t, again, misses, "errors are not cached")

	g := core.NewGraph()
	undirected(t, g, [2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3})
	require.NoError(t, g.AddVertex(9))
	n = network(t, g)

	r, err = n.Centrality(centrality.Degree, p)
	require.NoError(t, err)
	assert.Len(t, r.Scores, 4)

	p.DropIsolates = true
	r, err = n.Centrality(centrality.Degree, p)
	require.NoError(t, err)
	assert.Len(t, r.Scores, 3)
}

func TestMatrix_Kinds(t *testing.T) {
	n := network(t, pathGraph(t))
	p := analysis.MatrixParams{View: analysis.DefaultView()}

	a, err := n.Matrix(analysis.AdjacencyMatrix, p)
	require.NoError(t, err)
	assert.True(t, matrix.IsSymmetric(a))

	deg, err := n.Matrix(analysis.DegreeMatrix, p)
	require.NoError(t, err)
	v, _ := deg.At(2, 2)
	assert.Equal(t, 2.0, v)

	d, err := n.Matrix(analysis.DistanceMatrix, p)
	require.NoError(t, err)
	v, _ = d.At(0, 4)
	assert.Equal(t, 4.0, v)

	sp, err := n.Matrix(analysis.ShortestPathsMatrix, p)
	require.NoError(t, err)
	v, _ = sp.At(0, 4)
	assert.Equal(t, 1.0, v)

	// P5 adjacency is singular (odd path).
	_, err = n.Matrix(analysis.InverseMatrix, p)
	require.ErrorIs(t, err, matrix.ErrSingular)

	p.Metric = matrix.Hamming
	dis, err := n.Matrix(analysis.DissimilarityMatrix, p)
	require.NoError(t, err)
	v, _ = dis.At(0, 4)
	assert.Equal(t, 2.0, v, "ends differ at columns 1 and 3")

	_, err = n.Matrix(analysis.MatrixKind(42), p)
	require.ErrorIs(t, err, analysis.ErrUnknownMatrix)
}

// TestSymmetrize runs matrix and centrality queries on a directed chain
// with and without reciprocated ties.
func TestSymmetrize(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(3, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 5))
	n := network(t, g)

	directed := analysis.View{Relation: analysis.CurrentRelation, Weighted: true}
	a, err := n.Matrix(analysis.AdjacencyMatrix, analysis.MatrixParams{View: directed})
	require.NoError(t, err)
	assert.False(t, matrix.IsSymmetric(a))

	sym := directed
	sym.Symmetrize = true
	a, err = n.Matrix(analysis.AdjacencyMatrix, analysis.MatrixParams{View: sym})
	require.NoError(t, err)
	assert.True(t, matrix.IsSymmetric(a))
	v, _ := a.At(1, 0)
	assert.Equal(t, 1.0, v, "reverse of 1→2")
	v, _ = a.At(2, 1)
	assert.Equal(t, 5.0, v, "larger of 3→2 and 2→3")

	// Unweighted and symmetrized, the chain is P3: centre 1, ends 1/√2.
	sym.Weighted = false
	evc, err := n.Centrality(centrality.Eigenvector, analysis.CentralityParams{View: sym})
	require.NoError(t, err)
	require.Len(t, evc.Scores, 3)
	assert.InDelta(t, 1.0, evc.Scores[1].Std, 1e-4)
	assert.InDelta(t, 1/math.Sqrt2, evc.Scores[0].Std, 1e-4)
	assert.InDelta(t, 1/math.Sqrt2, evc.Scores[2].Std, 1e-4)

	plain, err := n.Centrality(centrality.Eigenvector, analysis.CentralityParams{View: analysis.DefaultView()})
	require.NoError(t, err)
	assert.NotSame(t, evc, plain, "symmetrized views are cached separately")
}

func TestMatrix_InverseOfEdge(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g, [2]int{1, 2})
	n := network(t, g)

	inv, err := n.Matrix(analysis.InverseMatrix, analysis.MatrixParams{
		View:   analysis.DefaultView(),
		Method: matrix.MethodGaussJordan,
	})
	require.NoError(t, err)
	v, _ := inv.At(0, 1)
	assert.InDelta(t, 1.0, v, 1e-12)
}

func TestMatrix_InversePivotTolerance(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1e-6, core.WithEdgeType(core.Undirected)))
	n := network(t, g)
	p := analysis.MatrixParams{View: analysis.View{Relation: analysis.CurrentRelation, Weighted: true}}

	inv, err := n.Matrix(analysis.InverseMatrix, p)
	require.NoError(t, err)
	v, _ := inv.At(0, 1)
	assert.InDelta(t, 1e6, v, 1e-3)

	p.PivotTolerance = 1e-3
	_, err = n.Matrix(analysis.InverseMatrix, p)
	require.ErrorIs(t, err, matrix.ErrSingular)

	p.PivotTolerance = -1
	_, err = n.Matrix(analysis.InverseMatrix, p)
	require.ErrorIs(t, err, analysis.ErrBadTolerance)
}

func TestMatrix_Empty(t *testing.T) {
	n := network(t, core.NewGraph())
	_, err := n.Matrix(analysis.AdjacencyMatrix, analysis.MatrixParams{})
	require.ErrorIs(t, err, analysis.ErrEmptyNetwork)
	_, err = n.Cluster(analysis.ClusterParams{})
	require.ErrorIs(t, err, analysis.ErrEmptyNetwork)
}

func TestParseMatrixKind(t *testing.T) {
	for _, k := range []analysis.MatrixKind{
		analysis.AdjacencyMatrix, analysis.DistanceMatrix, analysis.DissimilarityMatrix,
	} {
		got, err := analysis.ParseMatrixKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := analysis.ParseMatrixKind("nope")
	require.ErrorIs(t, err, analysis.ErrUnknownMatrix)
}

// TestCluster_Distances: the two triangles merge internally at level 1 and
// join only at +Inf.
func TestCluster_Distances(t *testing.T) {
	n := network(t, twoTriangles(t))

	res, err := n.Cluster(analysis.ClusterParams{
		View:         analysis.DefaultView(),
		Linkage:      cluster.SingleLinkage,
		UseDistances: true,
	})
	require.NoError(t, err)
	require.Len(t, res.Dendrogram.Merges, 5)
	levels := res.Dendrogram.Levels()
	assert.Equal(t, []float64{1, 1, 1, 1}, levels[:4])
	assert.True(t, math.IsInf(levels[4], 1))

	labels, err := res.Dendrogram.Cut(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, res.IDs)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, labels)
}

func TestCluster_Profiles(t *testing.T) {
	n := network(t, twoTriangles(t))

	res, err := n.Cluster(analysis.ClusterParams{
		View:    analysis.DefaultView(),
		Linkage: cluster.CompleteLinkage,
		Metric:  matrix.Jaccard,
	})
	require.NoError(t, err)
	assert.Len(t, res.Dendrogram.Merges, 5)
	levels := res.Dendrogram.Levels()
	for i := 1; i < len(levels); i++ {
		assert.LessOrEqual(t, levels[i-1], levels[i])
	}

	_, err = n.Cluster(analysis.ClusterParams{Linkage: cluster.Linkage(9)})
	require.ErrorIs(t, err, cluster.ErrUnknownLinkage)
}

func TestStructureQueries(t *testing.T) {
	n := network(t, twoTriangles(t))

	clc, err := n.ClusteringCoefficient(analysis.DefaultView())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, clc.Mean, 1e-12)

	census, err := n.TriadCensus(analysis.DefaultView())
	require.NoError(t, err)
	assert.Equal(t, 20, census.Total())
	assert.Equal(t, 2, census[cluster.Triad300])
}

// TestRelations: views select the relation explicitly or follow the graph.
func TestRelations(t *testing.T) {
	g := pathGraph(t)
	friends := g.AddRelation("friends")
	require.NoError(t, g.AddEdge(1, 5, 1, core.WithRelation(friends), core.WithEdgeType(core.Undirected)))
	n := network(t, g)

	assert.Equal(t, 4.0, n.Distance(1, 5))
	tab, err := n.Paths(analysis.View{Relation: friends})
	require.NoError(t, err)
	s := n.Snapshot(analysis.View{Relation: friends})
	assert.Equal(t, 1.0, tab.Distance(s.Index(1), s.Index(5)))

	require.NoError(t, g.SelectRelation(friends))
	assert.Equal(t, 1.0, n.Distance(1, 5))
}

// TestLayout_Pure: layouts do not touch stored coordinates until
// StorePositions is called.
func TestLayout_Pure(t *testing.T) {
	g := pathGraph(t)
	n := network(t, g)

	p := analysis.DefaultLayoutParams()
	p.Algorithm = layout.FR
	p.Seed = 7
	p.Iterations = 50
	res, err := n.Layout(p)
	require.NoError(t, err)
	require.Len(t, res.Positions, 5)

	v, ok := g.Vertex(1)
	require.True(t, ok)
	assert.Zero(t, v.X)
	assert.Zero(t, v.Y)

	again, err := n.Layout(p)
	require.NoError(t, err)
	assert.Equal(t, res.Positions, again.Positions, "same seed, same layout")

	bounds := layout.DefaultCanvas.Bounds()
	for _, pos := range res.Positions {
		assert.True(t, bounds.Contains(pos))
	}

	require.NoError(t, n.StorePositions(res.Positions))
	v, _ = g.Vertex(1)
	assert.Equal(t, res.Positions[1].X, v.X)

	err = n.StorePositions(layout.Positions{99: r2.Vec{X: 1, Y: 1}})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestLayout_FromStore(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1, core.WithPosition(100, 100)))
	n := network(t, g)

	p := analysis.DefaultLayoutParams()
	p.Algorithm = layout.Spring
	p.FromStore = true
	res, err := n.Layout(p)
	require.NoError(t, err)
	assert.Equal(t, r2.Vec{X: 100, Y: 100}, res.Positions[1])

	p.Canvas = layout.Canvas{Width: 10, Height: 10, Margin: 10}
	_, err = n.Layout(p)
	require.ErrorIs(t, err, layout.ErrBadCanvas)
}
