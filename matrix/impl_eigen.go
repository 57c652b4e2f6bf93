// SPDX-License-Identifier: MIT
// Package matrix: power iteration for the leading eigenpair.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Power iteration defaults.
const (
	DefaultPowerTolerance = 1e-7
	DefaultPowerMaxIter   = 500
)

// EigenResult is the outcome of PowerIteration.
//
// Vector is L2-normalized. Value is ‖A·x‖ at the final iterate, i.e. the
// dominant eigenvalue magnitude once Converged is true. Sum/Min/Max and their
// indices summarize Vector so callers avoid a second scan.
type EigenResult struct {
	Vector     []float64
	Value      float64
	Sum        float64
	Min, Max   float64
	MinIndex   int
	MaxIndex   int
	Iterations int
	Converged  bool
}

// PowerIteration approximates the dominant eigenvector of a square matrix.
//
// Implementation:
//   - Stage 1: validate shape; normalize x0 (nil ⇒ all-ones).
//   - Stage 2: repeat y = A·x, λ = ‖y‖, x' = y/λ until max|x' − x| < tol
//     or maxIter iterations.
//   - Stage 3: summarize the final vector.
//
// Behavior highlights:
//   - Exhausting maxIter is not an error: the best vector is returned with
//     Converged=false.
//   - A·x = 0 (e.g. the zero matrix) returns the current vector with Value 0
//     and Converged=true; the caller decides what a null spectrum means.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(x0) != n),
//     ErrZeroVector (x0 is all zeros).
//
// Complexity:
//   - Time O(iter·n²), Space O(n).
//
// AI-Hints:
//   - Bipartite graphs make A oscillate between two vectors; iterate on A + I
//     and subtract 1 from Value to obtain the same eigenvector without oscillation.
func PowerIteration(m Matrix, x0 []float64, tol float64, maxIter int) (*EigenResult, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	n := m.Rows()
	if tol <= 0 || isNonFinite(tol) {
		tol = DefaultPowerTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultPowerMaxIter
	}

	x := make([]float64, n)
	if x0 == nil {
		for i := range x {
			x[i] = 1
		}
	} else {
		if err := ValidateVecLen(x0, n); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
		copy(x, x0)
	}
	norm := floats.Norm(x, 2)
	if norm == 0 || math.IsNaN(norm) {
		return nil, matrixErrorf(opPower, ErrZeroVector)
	}
	floats.Scale(1/norm, x)

	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}

	res := &EigenResult{}
	y := make([]float64, n)
	for res.Iterations < maxIter {
		res.Iterations++
		for i := 0; i < n; i++ {
			y[i] = floats.Dot(d.data[i*n:(i+1)*n], x)
		}
		lambda := floats.Norm(y, 2)
		if lambda == 0 {
			res.Value = 0
			res.Converged = true
			break
		}
		floats.Scale(1/lambda, y)
		delta := floats.Distance(x, y, math.Inf(1))
		copy(x, y)
		res.Value = lambda
		if delta < tol {
			res.Converged = true
			break
		}
	}

	res.Vector = x
	if n > 0 {
		res.Sum = floats.Sum(x)
		res.MinIndex = floats.MinIdx(x)
		res.MaxIndex = floats.MaxIdx(x)
		res.Min = x[res.MinIndex]
		res.Max = x[res.MaxIndex]
	}

	return res, nil
}
