// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and reductions. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel converts its operands with toDense once and then walks the
//     flat buffers in fixed i→k→j order, so results are bit-for-bit reproducible.
//   - Results are always freshly allocated; operands are never mutated.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opTrace     = "Trace"
	opSums      = "Sums"
	opInverse   = "Inverse"
	opLU        = "LU"
	opPower     = "PowerIteration"
	opDissim    = "Dissimilarity"
	opPearson   = "PearsonCorrelation"
	opGraph     = "Graph"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); materialize both as *Dense.
//   - Stage 2: single flat loop 0..n-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newDenseZeroOK(da.r, da.c, WithNoValidateNaNInf())
	for k := range out.data {
		out.data[k] = da.data[k] + sign*db.data[k]
	}

	return out, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→k→j loop order so the inner loop streams rows of b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, inner, c := da.r, da.c, db.c
	out := newDenseZeroOK(r, c, WithNoValidateNaNInf())
	var aik float64
	for i := 0; i < r; i++ {
		row := out.data[i*c : (i+1)*c]
		for k := 0; k < inner; k++ {
			aik = da.data[i*inner+k]
			if aik == 0 {
				continue
			}
			floats.AddScaled(row, aik, db.data[k*c:(k+1)*c])
		}
	}

	return out, nil
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := newDenseZeroOK(d.r, d.c, WithNoValidateNaNInf())
	floats.ScaleTo(out.data, alpha, d.data)

	return out, nil
}

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newDenseZeroOK(d.c, d.r, WithNoValidateNaNInf())
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols()).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		y[i] = floats.Dot(d.data[i*d.c:(i+1)*d.c], x)
	}

	return y, nil
}

// Trace returns Σ m[i,i] of a square matrix.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var t float64
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		t += v
	}

	return t, nil
}

// RowSums returns the vector of row totals.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSums, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSums, err)
	}
	out := make([]float64, d.r)
	for i := range out {
		out[i] = floats.Sum(d.data[i*d.c : (i+1)*d.c])
	}

	return out, nil
}

// ColSums returns the vector of column totals.
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSums, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSums, err)
	}
	out := make([]float64, d.c)
	for i := 0; i < d.r; i++ {
		floats.Add(out, d.data[i*d.c:(i+1)*d.c])
	}

	return out, nil
}

// IsSymmetric reports whether m is square and symmetric within the epsilon
// of opts (DefaultEpsilon unless WithEpsilon is given). A nil or non-square
// matrix is reported as not symmetric.
func IsSymmetric(m Matrix, opts ...Option) bool {
	return ValidateSymmetric(m, gatherOptions(opts...).eps) == nil
}
