// SPDX-License-Identifier: MIT
// Package matrix: tie-profile dissimilarities and correlations.
//
// The profile of vertex i is row i (outgoing ties), column i (incoming ties),
// or both concatenated. Every output is n×n, symmetric, with a zero diagonal
// for dissimilarities and a unit diagonal for correlations.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// profiles extracts one vector per vertex according to the selector.
func profiles(d *Dense, v Variables) ([][]float64, error) {
	n := d.r
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		switch v {
		case Rows:
			out[i] = append([]float64(nil), d.RawRow(i)...)
		case Columns:
			col := make([]float64, n)
			for k := 0; k < n; k++ {
				col[k] = d.data[k*n+i]
			}
			out[i] = col
		case Both:
			p := make([]float64, 0, 2*n)
			p = append(p, d.RawRow(i)...)
			for k := 0; k < n; k++ {
				p = append(p, d.data[k*n+i])
			}
			out[i] = p
		default:
			return nil, ErrUnknownMethod
		}
	}

	return out, nil
}

// Dissimilarity computes the pairwise dissimilarity between vertex profiles.
//
// Implementation:
//   - Stage 1: validate square input and build the profiles.
//   - Stage 2: fill the upper triangle with metric(p_i, p_j); mirror it.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnknownMethod.
//
// Complexity:
//   - Time O(n²·L) for profile length L, Space O(n²).
func Dissimilarity(m Matrix, metric Metric, variables Variables) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDissim, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opDissim, err)
	}
	p, err := profiles(d, variables)
	if err != nil {
		return nil, matrixErrorf(opDissim, err)
	}
	var fn func(a, b []float64) float64
	switch metric {
	case Euclidean:
		fn = func(a, b []float64) float64 { return floats.Distance(a, b, 2) }
	case Manhattan:
		fn = func(a, b []float64) float64 { return floats.Distance(a, b, 1) }
	case Chebyshev:
		fn = func(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }
	case Hamming:
		fn = hamming
	case Jaccard:
		fn = jaccard
	default:
		return nil, matrixErrorf(opDissim, ErrUnknownMethod)
	}

	n := d.r
	out := newDenseZeroOK(n, n, WithNoValidateNaNInf())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := fn(p[i], p[j])
			out.data[i*n+j] = v
			out.data[j*n+i] = v
		}
	}

	return out, nil
}

func hamming(a, b []float64) float64 {
	var c float64
	for k := range a {
		if a[k] != b[k] {
			c++
		}
	}

	return c
}

// jaccard treats non-zero entries as set membership.
func jaccard(a, b []float64) float64 {
	var inter, union float64
	for k := range a {
		x, y := a[k] != 0, b[k] != 0
		if x && y {
			inter++
		}
		if x || y {
			union++
		}
	}
	if union == 0 {
		return 0
	}

	return 1 - inter/union
}

// PearsonCorrelation returns the n×n matrix of Pearson correlation
// coefficients between vertex profiles. A constant profile has undefined
// correlation; its off-diagonal cells are 0 and its diagonal stays 1.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrUnknownMethod.
// Complexity: O(n²·L).
func PearsonCorrelation(m Matrix, variables Variables) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPearson, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opPearson, err)
	}
	p, err := profiles(d, variables)
	if err != nil {
		return nil, matrixErrorf(opPearson, err)
	}
	n := d.r
	out := newDenseZeroOK(n, n, WithNoValidateNaNInf())
	for i := 0; i < n; i++ {
		out.data[i*n+i] = 1
		for j := i + 1; j < n; j++ {
			r := stat.Correlation(p[i], p[j], nil)
			if math.IsNaN(r) {
				r = 0
			}
			out.data[i*n+j] = r
			out.data[j*n+i] = r
		}
	}

	return out, nil
}
