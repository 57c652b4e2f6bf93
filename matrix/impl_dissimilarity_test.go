// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/matrix"
)

func TestDissimilarity_Metrics(t *testing.T) {
	a := mustRows(t, [][]float64{
		{0, 1, 1},
		{1, 0, 0},
		{1, 1, 0},
	})

	cases := []struct {
		metric matrix.Metric
		want01 float64 // rows 0 and 1: (0,1,1) vs (1,0,0)
		want02 float64 // rows 0 and 2: (0,1,1) vs (1,1,0)
	}{
		{matrix.Euclidean, math.Sqrt(3), math.Sqrt(2)},
		{matrix.Manhattan, 3, 2},
		{matrix.Hamming, 3, 2},
		{matrix.Chebyshev, 1, 1},
		{matrix.Jaccard, 1, 1 - 1.0/3},
	}
	for _, tc := range cases {
		t.Run(tc.metric.String(), func(t *testing.T) {
			d, err := matrix.Dissimilarity(a, tc.metric, matrix.Rows)
			require.NoError(t, err)
			v, _ := d.At(0, 1)
			assert.InDelta(t, tc.want01, v, tol)
			v, _ = d.At(0, 2)
			assert.InDelta(t, tc.want02, v, tol)
			require.NoError(t, matrix.ValidateDissimilarity(d, tol))
			for i := 0; i < 3; i++ {
				v, _ = d.At(i, i)
				assert.Equal(t, 0.0, v)
			}
		})
	}
}

func TestDissimilarity_Profiles(t *testing.T) {
	a := mustRows(t, [][]float64{
		{0, 1},
		{0, 0},
	})
	rows, err := matrix.Dissimilarity(a, matrix.Manhattan, matrix.Rows)
	require.NoError(t, err)
	cols, err := matrix.Dissimilarity(a, matrix.Manhattan, matrix.Columns)
	require.NoError(t, err)
	both, err := matrix.Dissimilarity(a, matrix.Manhattan, matrix.Both)
	require.NoError(t, err)

	r, _ := rows.At(0, 1)
	c, _ := cols.At(0, 1)
	b, _ := both.At(0, 1)
	assert.Equal(t, 1.0, r)
	assert.Equal(t, 1.0, c)
	assert.Equal(t, 2.0, b)

	_, err = matrix.Dissimilarity(a, matrix.Metric(42), matrix.Rows)
	require.ErrorIs(t, err, matrix.ErrUnknownMethod)
}

func TestPearsonCorrelation(t *testing.T) {
	a := mustRows(t, [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{3, 2, 1},
	})
	p, err := matrix.PearsonCorrelation(a, matrix.Rows)
	require.NoError(t, err)
	v, _ := p.At(0, 1)
	assert.InDelta(t, 1.0, v, tol)
	v, _ = p.At(0, 2)
	assert.InDelta(t, -1.0, v, tol)
	v, _ = p.At(2, 2)
	assert.Equal(t, 1.0, v)
	assert.True(t, matrix.IsSymmetric(p))
}

func TestValidateDissimilarity(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateDissimilarity(mustRows(t, [][]float64{{0, 1}, {2, 0}}), tol), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateDissimilarity(mustRows(t, [][]float64{{0, -1}, {-1, 0}}), tol), matrix.ErrNegativeEntry)
	require.ErrorIs(t, matrix.ValidateDissimilarity(mustRows(t, [][]float64{{0, 1}}), tol), matrix.ErrNonSquare)
}
