// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting and matrix inversion.
//
// Both inversion schemes pick the largest-magnitude pivot in the current
// column (partial pivoting). A pivot whose magnitude falls under the pivot
// tolerance aborts the run with ErrSingular; no partial inverse is returned.

package matrix

import "math"

// LUResult holds the packed factors of PA = LU.
//
// LU stores L strictly below the diagonal (unit diagonal implied) and U on and
// above it. Perm[i] is the original row placed at row i; Sign is +1 or −1
// depending on the parity of the row swaps.
type LUResult struct {
	LU   *Dense
	Perm []int
	Sign float64
}

// LU computes the Doolittle factorization PA = LU with partial pivoting.
//
// Implementation:
//   - Stage 1: validate m (not nil, square) and copy it into a scratch Dense.
//   - Stage 2: for each column k choose p = argmax_{i≥k} |a[i,k]|, swap rows
//     k and p, then eliminate below the pivot storing multipliers in place.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (|pivot| ≤ tolerance).
//
// Determinism:
//   - Ties in pivot magnitude keep the lowest row index.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*LUResult, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := src.r
	a := newDenseZeroOK(n, n, WithNoValidateNaNInf())
	copy(a.data, src.data)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p int
		maxAbs, f  float64
	)
	for k = 0; k < n; k++ {
		// Stage 2a: pivot search.
		p, maxAbs = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs <= o.pivotTol || math.IsNaN(maxAbs) {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			swapRows(a, p, k)
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}
		// Stage 2b: elimination.
		pivot := a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a.data[i*n+k] / pivot
			a.data[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
			}
		}
	}

	return &LUResult{LU: a, Perm: perm, Sign: sign}, nil
}

// Solve returns x with A·x = b using the packed factors.
// Errors: ErrDimensionMismatch when len(b) != n.
// Complexity: O(n²).
func (f *LUResult) Solve(b []float64) ([]float64, error) {
	n := f.LU.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	x := make([]float64, n)
	f.solveInto(x, func(i int) float64 { return b[f.Perm[i]] })

	return x, nil
}

// solveInto runs forward substitution with unit L and backward substitution with U.
// rhs(i) yields the permuted right-hand side entry for row i.
func (f *LUResult) solveInto(x []float64, rhs func(i int) float64) {
	n := f.LU.r
	lu := f.LU.data
	var sum float64
	for i := 0; i < n; i++ {
		sum = rhs(i)
		for k := 0; k < i; k++ {
			sum -= lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	for i := n - 1; i >= 0; i-- {
		sum = x[i]
		for k := i + 1; k < n; k++ {
			sum -= lu[i*n+k] * x[k]
		}
		x[i] = sum / lu[i*n+i]
	}
}

// Determinant returns det(A) = Sign · Π U[i,i].
func (f *LUResult) Determinant() float64 {
	n := f.LU.r
	det := f.Sign
	for i := 0; i < n; i++ {
		det *= f.LU.data[i*n+i]
	}

	return det
}

// Inverse returns A⁻¹ using the requested elimination scheme.
//
// Implementation:
//   - MethodLU: factor once, then solve A·x = e_col for each column.
//   - MethodGaussJordan: reduce the augmented [A | I] in place.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrUnknownMethod.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - The inverse is not clamped or rescaled; callers compare with a tolerance.
func Inverse(m Matrix, method InverseMethod, opts ...Option) (*Dense, error) {
	switch method {
	case MethodLU:
		return inverseLU(m, opts...)
	case MethodGaussJordan:
		return inverseGaussJordan(m, opts...)
	default:
		return nil, matrixErrorf(opInverse, ErrUnknownMethod)
	}
}

func inverseLU(m Matrix, opts ...Option) (*Dense, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.LU.r
	inv := newDenseZeroOK(n, n, WithNoValidateNaNInf())
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		f.solveInto(x, func(i int) float64 {
			if f.Perm[i] == col {
				return 1
			}
			return 0
		})
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// inverseGaussJordan reduces [A | I] to [I | A⁻¹].
//
// Implementation:
//   - Stage 1: copy A; start the right block as identity.
//   - Stage 2: per column pick the max |pivot| at or below the diagonal,
//     swap rows in both blocks, normalize the pivot row, eliminate the column
//     in every other row.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func inverseGaussJordan(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := src.r
	a := newDenseZeroOK(n, n, WithNoValidateNaNInf())
	copy(a.data, src.data)
	inv := newDenseZeroOK(n, n, WithNoValidateNaNInf())
	for i := 0; i < n; i++ {
		inv.data[i*n+i] = 1
	}

	for k := 0; k < n; k++ {
		p, maxAbs := k, math.Abs(a.data[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs <= o.pivotTol || math.IsNaN(maxAbs) {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if p != k {
			swapRows(a, p, k)
			swapRows(inv, p, k)
		}

		pivot := a.data[k*n+k]
		for j := 0; j < n; j++ {
			a.data[k*n+j] /= pivot
			inv.data[k*n+j] /= pivot
		}
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			f := a.data[i*n+k]
			if f == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
				inv.data[i*n+j] -= f * inv.data[k*n+j]
			}
		}
	}

	return inv, nil
}

func swapRows(m *Dense, a, b int) {
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
