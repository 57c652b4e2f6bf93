// SPDX-License-Identifier: MIT
package centrality_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/matrix"
)

const eps = 1e-9

func undirected(t *testing.T, g *core.Graph, pairs ...[2]int) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1], 1, core.WithEdgeType(core.Undirected)))
	}
}

// star: centre 0 with leaves 1..4.
func star(t *testing.T) *core.Snapshot {
	t.Helper()
	g := core.NewGraph()
	undirected(t, g, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4})

	return g.Snapshot(0)
}

func pathGraph(t *testing.T, n int) *core.Snapshot {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		undirected(t, g, [2]int{i, i + 1})
	}

	return g.Snapshot(0)
}

// score returns the Score for vertex id.
func score(t *testing.T, r *centrality.Report, id int) centrality.Score {
	t.Helper()
	for _, s := range r.Scores {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("no score for vertex %d", id)

	return centrality.Score{}
}

func compute(t *testing.T, s *core.Snapshot, idx centrality.Index, opts ...centrality.Option) *centrality.Report {
	t.Helper()
	r, err := centrality.Compute(s, idx, opts...)
	require.NoError(t, err, idx.String())

	return r
}

func TestCompute_Errors(t *testing.T) {
	_, err := centrality.Compute(nil, centrality.Degree)
	require.ErrorIs(t, err, centrality.ErrNilSnapshot)

	s := star(t)
	_, err = centrality.Compute(s, centrality.Index(99))
	require.ErrorIs(t, err, centrality.ErrUnknownIndex)
	_, err = centrality.Compute(s, centrality.Degree, centrality.WithPrecision(-1))
	require.ErrorIs(t, err, centrality.ErrBadPrecision)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = centrality.Compute(s, centrality.Closeness, centrality.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseIndex(t *testing.T) {
	for _, idx := range centrality.Indices {
		got, err := centrality.ParseIndex(idx.Abbrev())
		require.NoError(t, err)
		assert.Equal(t, idx, got)
		got, err = centrality.ParseIndex(idx.String())
		require.NoError(t, err)
		assert.Equal(t, idx, got)
	}
	_, err := centrality.ParseIndex("nope")
	require.ErrorIs(t, err, centrality.ErrUnknownIndex)
	assert.Equal(t, "unknown", centrality.Index(-1).String())
}

func TestStar_DegreeClosenessBetweenness(t *testing.T) {
	s := star(t)

	dc := compute(t, s, centrality.Degree)
	assert.Equal(t, 4.0, score(t, dc, 0).Raw)
	assert.InDelta(t, 1.0, score(t, dc, 0).Std, eps)
	assert.InDelta(t, 0.25, score(t, dc, 3).Std, eps)
	assert.InDelta(t, 1.0, dc.Group, eps)
	assert.Equal(t, []centrality.Bin{{Value: 0.25, Count: 4}, {Value: 1, Count: 1}}, dc.Histogram)
	assert.Equal(t, 0, dc.Stats.MaxID)
	assert.InDelta(t, 8.0, dc.Stats.Sum, eps)

	cc := compute(t, s, centrality.Closeness)
	assert.InDelta(t, 0.25, score(t, cc, 0).Raw, eps)
	assert.InDelta(t, 1.0, score(t, cc, 0).Std, eps)
	assert.InDelta(t, 1.0/7, score(t, cc, 1).Raw, eps)
	assert.InDelta(t, 4.0/7, score(t, cc, 1).Std, eps)
	assert.True(t, cc.Connected)
	assert.Empty(t, cc.Excluded)
	// Freeman: 4·(1 − 4/7)·(2·5−3)/(4·3)
	assert.InDelta(t, 4*(3.0/7)*7/12, cc.Group, eps)

	bc := compute(t, s, centrality.Betweenness)
	assert.InDelta(t, 6.0, score(t, bc, 0).Raw, eps)
	assert.InDelta(t, 1.0, score(t, bc, 0).Std, eps)
	assert.Equal(t, 0.0, score(t, bc, 2).Raw)
	assert.InDelta(t, 1.0, bc.Group, eps)

	evc := compute(t, s, centrality.Eigenvector)
	assert.True(t, evc.Converged)
	assert.InDelta(t, 1.0, score(t, evc, 0).Std, 1e-5)
	assert.InDelta(t, 0.5, score(t, evc, 1).Std, 1e-5)
}

func TestPath_EccentricityPowerStress(t *testing.T) {
	s := pathGraph(t, 3)

	ec := compute(t, s, centrality.Eccentricity)
	assert.InDelta(t, 1.0, score(t, ec, 2).Raw, eps)
	assert.InDelta(t, 0.5, score(t, ec, 1).Raw, eps)
	assert.InDelta(t, 0.5, score(t, ec, 3).Std, eps)
	assert.True(t, ec.Group != ec.Group, "EC has no group index")

	pc := compute(t, s, centrality.Power)
	assert.InDelta(t, 2.0, score(t, pc, 2).Raw, eps)
	assert.InDelta(t, 1.5, score(t, pc, 1).Raw, eps)
	assert.InDelta(t, 0.75, score(t, pc, 1).Std, eps)

	bc := compute(t, s, centrality.Betweenness)
	assert.InDelta(t, 1.0, score(t, bc, 2).Raw, eps)

	sc := compute(t, pathGraph(t, 4), centrality.Stress)
	assert.InDelta(t, 2.0, score(t, sc, 2).Raw, eps)
	assert.InDelta(t, 2.0, score(t, sc, 3).Raw, eps)
	assert.InDelta(t, 0.5, score(t, sc, 2).Std, eps)
}

func TestDirected_ProximityAndPrestige(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	s := g.Snapshot(0)

	pp := compute(t, s, centrality.Proximity)
	assert.Equal(t, 0.0, score(t, pp, 1).Raw)
	assert.InDelta(t, 0.5, score(t, pp, 2).Raw, eps)
	assert.InDelta(t, 2.0/3, score(t, pp, 3).Raw, eps)

	ir := compute(t, s, centrality.InfluenceRange)
	assert.InDelta(t, 2.0/3, score(t, ir, 1).Raw, eps)
	assert.Equal(t, 0.0, score(t, ir, 3).Raw)

	dp := compute(t, s, centrality.DegreePrestige)
	assert.Equal(t, 0.0, score(t, dp, 1).Raw)
	assert.Equal(t, 1.0, score(t, dp, 3).Raw)
	assert.InDelta(t, 0.5, score(t, dp, 3).Std, eps)

	// Directed path: 1 lies on no path, 2 on 1→3.
	bc := compute(t, s, centrality.Betweenness)
	assert.InDelta(t, 1.0, score(t, bc, 2).Raw, eps)
	assert.InDelta(t, 0.5, score(t, bc, 2).Std, eps)

	cc := compute(t, s, centrality.Closeness)
	assert.False(t, cc.Connected)
	assert.ElementsMatch(t, []int{2, 3}, cc.Excluded)
	assert.InDelta(t, 1.0/3, score(t, cc, 1).Raw, eps)
}

func TestTwoTriangles_Disconnected(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{4, 5}, [2]int{5, 6}, [2]int{6, 4})
	s := g.Snapshot(0)

	cc := compute(t, s, centrality.Closeness)
	assert.False(t, cc.Connected)
	assert.Len(t, cc.Excluded, 6)
	for _, sc := range cc.Scores {
		assert.Equal(t, 0.0, sc.Raw)
	}

	ir := compute(t, s, centrality.InfluenceRange)
	assert.InDelta(t, 0.4, score(t, ir, 5).Raw, eps)

	r, err := centrality.Compute(s, centrality.Information)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.NotNil(t, r)
	for _, sc := range r.Scores {
		assert.Equal(t, 0.0, sc.Raw)
	}
}

func TestComplete_UniformScores(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			undirected(t, g, [2]int{i, j})
		}
	}
	s := g.Snapshot(0)

	dc := compute(t, s, centrality.Degree)
	for _, sc := range dc.Scores {
		assert.InDelta(t, 1.0, sc.Std, eps)
	}
	assert.InDelta(t, 0.0, dc.Group, eps)
	assert.Len(t, dc.Histogram, 1)

	pr := compute(t, s, centrality.PageRank)
	assert.True(t, pr.Converged)
	for _, sc := range pr.Scores {
		assert.InDelta(t, 0.2, sc.Raw, 1e-6)
		assert.InDelta(t, 1.0, sc.Std, 1e-6)
	}
	assert.InDelta(t, 0.0, pr.Stats.Variance, 1e-12)
}

func TestInformation_Triangle(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1})
	require.NoError(t, g.AddVertex(9))

	ic := compute(t, g.Snapshot(0), centrality.Information)
	assert.InDelta(t, 2.25, score(t, ic, 1).Raw, eps)
	assert.InDelta(t, 1.0/3, score(t, ic, 2).Std, eps)
	assert.Equal(t, []int{9}, ic.Excluded)
	assert.False(t, ic.Connected)
}

func TestPageRank_Edgeless(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	pr := compute(t, g.Snapshot(0), centrality.PageRank)
	assert.True(t, pr.Converged)
	assert.Equal(t, 0, pr.Iterations)
	for _, sc := range pr.Scores {
		assert.InDelta(t, 1.0/3, sc.Raw, eps)
	}
}

func TestDegree_Weighted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 3, 4))
	s := g.Snapshot(0)

	dc := compute(t, s, centrality.Degree, centrality.WithWeights())
	assert.Equal(t, 4.0, score(t, dc, 1).Raw)
	assert.InDelta(t, 0.5, score(t, dc, 2).Std, eps)

	inv := compute(t, s, centrality.Degree, centrality.WithInvertWeights())
	assert.InDelta(t, 1.0/3+1, score(t, inv, 1).Raw, eps)

	plain := compute(t, s, centrality.Degree)
	assert.Equal(t, 2.0, score(t, plain, 1).Raw)
	assert.InDelta(t, 1.0, score(t, plain, 1).Std, eps)
}

func TestEmptySnapshot(t *testing.T) {
	s := core.NewGraph().Snapshot(0)
	all, err := centrality.ComputeAll(s)
	require.NoError(t, err)
	require.Len(t, all, len(centrality.Indices))
	for idx, r := range all {
		assert.Empty(t, r.Scores, idx.String())
		assert.Empty(t, r.Histogram)
	}
}

func TestComputeAll_MatchesCompute(t *testing.T) {
	s := star(t)
	all, err := centrality.ComputeAll(s, centrality.WithPrecision(2))
	require.NoError(t, err)
	for _, idx := range centrality.Indices {
		one := compute(t, s, idx, centrality.WithPrecision(2))
		require.Contains(t, all, idx)
		for i := range one.Scores {
			assert.InDelta(t, one.Scores[i].Raw, all[idx].Scores[i].Raw, eps, idx.String())
		}
		assert.Equal(t, one.Histogram, all[idx].Histogram, idx.String())
	}
}

func TestComputeAll_JoinsSingularError(t *testing.T) {
	g := core.NewGraph()
	undirected(t, g, [2]int{1, 2}, [2]int{3, 4})
	all, err := centrality.ComputeAll(g.Snapshot(0))
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Len(t, all, len(centrality.Indices))
}
