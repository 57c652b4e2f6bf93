// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph mutation and query contracts.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/core"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(-1), core.ErrNegativeVertexID)
	require.NoError(t, g.AddVertex(10, core.WithLabel("ten"), core.WithPosition(3, 4)))
	require.ErrorIs(t, g.AddVertex(10), core.ErrVertexExists)

	v, ok := g.Vertex(10)
	require.True(t, ok)
	assert.Equal(t, "ten", v.Label)
	assert.Equal(t, 3.0, v.X)
	assert.True(t, v.Enabled)

	require.ErrorIs(t, g.RemoveVertex(99), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(10))
	assert.False(t, g.HasVertex(10))
	assert.Equal(t, -1, g.IndexOf(10))
}

func TestGraph_ReindexAfterRemoval(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int{5, 3, 9, 1} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.RemoveVertex(3))

	ids := g.VertexIDs()
	assert.Equal(t, []int{5, 9, 1}, ids)
	for i, id := range ids {
		assert.Equal(t, i, g.IndexOf(id), "index of %d must be contiguous", id)
	}
	assert.Equal(t, 10, g.NextVertexID())
}

func TestGraph_UndirectedEdgeIsReciprocalPair(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 2.5, core.WithEdgeType(core.Undirected)))

	rel := g.CurrentRelation()
	assert.Equal(t, 2.5, g.EdgeWeight(1, 2, rel))
	assert.Equal(t, 2.5, g.EdgeWeight(2, 1, rel))
	assert.Equal(t, 2, g.EdgeCount(rel))

	typ, ok := g.EdgeTypeOf(2, 1, rel)
	require.True(t, ok)
	assert.Equal(t, core.Undirected, typ)

	// Removing one direction of an undirected edge removes both arcs.
	require.NoError(t, g.RemoveEdge(2, 1))
	assert.Equal(t, 0, g.EdgeCount(rel))
}

func TestGraph_DirectedMateBecomesReciprocated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))

	typ, _ := g.EdgeTypeOf(1, 2, 0)
	assert.Equal(t, core.Reciprocated, typ)

	require.NoError(t, g.RemoveEdge(2, 1))
	typ, _ = g.EdgeTypeOf(1, 2, 0)
	assert.Equal(t, core.Directed, typ)
}

// Overwriting one arc of an undirected or reciprocated pair with a directed
// arc leaves both arcs tagged Reciprocated.
func TestGraph_DirectedOverwriteNormalizesMate(t *testing.T) {
	for _, mate := range []core.EdgeType{core.Undirected, core.Reciprocated} {
		t.Run(mate.String(), func(t *testing.T) {
			g := core.NewGraph()
			require.NoError(t, g.AddEdge(1, 2, 1, core.WithEdgeType(mate)))
			require.NoError(t, g.AddEdge(1, 2, 3))

			for _, arc := range [][2]int{{1, 2}, {2, 1}} {
				typ, ok := g.EdgeTypeOf(arc[0], arc[1], 0)
				require.True(t, ok)
				assert.Equal(t, core.Reciprocated, typ, "%d→%d", arc[0], arc[1])
			}
			assert.Equal(t, 3.0, g.EdgeWeight(1, 2, 0))
			assert.Equal(t, 1.0, g.EdgeWeight(2, 1, 0))

			// Removing the mate keeps the new arc, now plain directed.
			require.NoError(t, g.RemoveEdge(2, 1))
			typ, ok := g.EdgeTypeOf(1, 2, 0)
			require.True(t, ok)
			assert.Equal(t, core.Directed, typ)
			assert.Equal(t, 1, g.EdgeCount(0))
		})
	}
}

func TestGraph_EdgeValidation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge(1, 1, 1), core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge(1, 2, 1, core.WithRelation(4)), core.ErrRelationNotFound)
	require.ErrorIs(t, g.RemoveEdge(1, 2), core.ErrEdgeNotFound)

	looped := core.NewGraph(core.WithLoops())
	require.NoError(t, looped.AddEdge(1, 1, 1))
	assert.True(t, looped.Looped())
}

func TestGraph_AbsentQueriesReturnSentinels(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0.0, g.EdgeWeight(1, 2, 0))
	assert.Equal(t, 0.0, g.EdgeWeight(1, 2, 42))
	assert.Equal(t, -1, g.IndexOf(1))
	assert.Equal(t, 0, g.OutDegree(1, 0))
	assert.False(t, g.HasEdge(1, 2, 0))
}

func TestGraph_Relations(t *testing.T) {
	g := core.NewGraph(core.WithRelationName("friendship"))
	advice := g.AddRelation("advice")
	assert.Equal(t, 1, advice)
	assert.Equal(t, []string{"friendship", "advice"}, g.Relations())
	assert.Equal(t, 1, g.RelationByName("advice"))

	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.SelectRelation(advice))
	require.NoError(t, g.AddEdge(2, 3, 1))

	assert.True(t, g.HasEdge(1, 2, 0))
	assert.False(t, g.HasEdge(1, 2, advice))
	assert.True(t, g.HasEdge(2, 3, advice))
	require.ErrorIs(t, g.SelectRelation(7), core.ErrRelationNotFound)

	stats := g.Stats()
	assert.Equal(t, 2, stats.RelationCount)
	assert.Equal(t, []int{1, 1}, stats.ArcCount)
}

func TestGraph_GenerationAndHooks(t *testing.T) {
	g := core.NewGraph()
	var kinds []core.ChangeKind
	g.OnChange(func(c core.Change) { kinds = append(kinds, c.Kind) })

	gen0 := g.Generation()
	require.NoError(t, g.AddEdge(1, 2, 1))
	gen1 := g.Generation()
	assert.Greater(t, gen1, gen0)

	// Positions are not topology.
	require.NoError(t, g.SetPosition(1, 5, 5))
	assert.Equal(t, gen1, g.Generation())

	require.NoError(t, g.SetEdgeEnabled(1, 2, 0, false))
	require.NoError(t, g.SetVertexEnabled(2, false))
	assert.Equal(t, []core.ChangeKind{core.EdgeAdded, core.PositionMoved, core.EdgeToggled, core.VertexToggled}, kinds)
}

func TestSnapshot_EnabledAndIsolates(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1, core.WithEdgeType(core.Undirected)))
	require.NoError(t, g.AddEdge(2, 3, 1, core.WithEdgeType(core.Undirected)))
	require.NoError(t, g.AddVertex(4))
	require.NoError(t, g.SetVertexEnabled(3, false))

	s := g.Snapshot(0)
	assert.Equal(t, []int{1, 2, 4}, s.IDs())
	assert.True(t, s.Symmetric())
	assert.False(t, s.Weighted())
	assert.True(t, s.IsIsolate(s.Index(4)))

	s = g.Snapshot(0, core.WithoutIsolates())
	assert.Equal(t, []int{1, 2}, s.IDs())
	assert.Equal(t, -1, s.Index(4))

	s = g.Snapshot(0, core.WithDisabled())
	assert.Equal(t, 4, s.N())
	assert.Equal(t, 4, s.ArcCount())
}

func TestSnapshot_Symmetrize(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(2, 1, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))

	s := g.Snapshot(0)
	assert.False(t, s.Symmetric())
	assert.True(t, s.Weighted())

	s = g.Snapshot(0, core.WithSymmetrize())
	assert.True(t, s.Symmetric())
	assert.Equal(t, 5.0, s.Weight(s.Index(1), s.Index(2)))
	assert.Equal(t, 5.0, s.Weight(s.Index(2), s.Index(1)))
	assert.True(t, s.HasArc(s.Index(3), s.Index(2)))
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 3, 1))

	assert.False(t, g.HasVertex(3))
	assert.True(t, c.HasEdge(1, 2, 0))
	assert.Equal(t, uint64(1), c.Generation())
}
