// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/matrix"
)

// triangleWithTail: 1–2–3 undirected triangle plus directed 3→4 (weight 2).
func triangleWithTail(t *testing.T) *core.Snapshot {
	t.Helper()
	g := core.NewGraph()
	und := core.WithEdgeType(core.Undirected)
	require.NoError(t, g.AddEdge(1, 2, 1, und))
	require.NoError(t, g.AddEdge(2, 3, 1, und))
	require.NoError(t, g.AddEdge(3, 1, 1, und))
	require.NoError(t, g.AddEdge(3, 4, 2))

	return g.Snapshot(0)
}

func TestAdjacency(t *testing.T) {
	s := triangleWithTail(t)
	a, err := matrix.Adjacency(s)
	require.NoError(t, err)
	v, _ := a.At(s.Index(3), s.Index(4))
	assert.Equal(t, 2.0, v)
	v, _ = a.At(s.Index(4), s.Index(3))
	assert.Equal(t, 0.0, v)

	b, err := matrix.Adjacency(s, matrix.WithBinary())
	require.NoError(t, err)
	v, _ = b.At(s.Index(3), s.Index(4))
	assert.Equal(t, 1.0, v)

	inv, err := matrix.Adjacency(s, matrix.WithInvertWeights())
	require.NoError(t, err)
	v, _ = inv.At(s.Index(3), s.Index(4))
	assert.Equal(t, 0.5, v)

	_, err = matrix.Adjacency(nil)
	require.ErrorIs(t, err, matrix.ErrNilSnapshot)
}

func TestAdjacency_UndirectedIsSymmetric(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddEdge(i, (i+2)%5, float64(i+1), core.WithEdgeType(core.Undirected)))
	}
	a, err := matrix.Adjacency(g.Snapshot(0))
	require.NoError(t, err)
	assert.True(t, matrix.IsSymmetric(a))
}

func TestDegreeLaplacianCocitation(t *testing.T) {
	s := triangleWithTail(t)
	i3 := s.Index(3)

	d, err := matrix.Degree(s, matrix.WithBinary())
	require.NoError(t, err)
	v, _ := d.At(i3, i3)
	assert.Equal(t, 3.0, v)

	l, err := matrix.Laplacian(s, matrix.WithBinary())
	require.NoError(t, err)
	rs, err := matrix.RowSums(l)
	require.NoError(t, err)
	for _, x := range rs {
		assert.Equal(t, 0.0, x)
	}

	c, err := matrix.Cocitation(s, matrix.WithBinary())
	require.NoError(t, err)
	// Vertex 4 is cited only by 3; 1 and 2 are both cited by 3.
	v, _ = c.At(s.Index(4), s.Index(4))
	assert.Equal(t, 1.0, v)
	v, _ = c.At(s.Index(1), s.Index(2))
	assert.Equal(t, 1.0, v)
}

func TestGraphMatrices_EmptySnapshot(t *testing.T) {
	s := core.NewGraph().Snapshot(0)
	a, err := matrix.Adjacency(s)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Rows())
	c, err := matrix.Cocitation(s)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Cols())
}
