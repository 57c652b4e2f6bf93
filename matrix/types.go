// SPDX-License-Identifier: MIT

// Package matrix: public interface and enumerations shared by kernels.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf under the numeric policy.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// InverseMethod selects the elimination scheme used by Inverse.
type InverseMethod int

const (
	// MethodLU factors PA = LU with partial pivoting and solves n column systems.
	MethodLU InverseMethod = iota

	// MethodGaussJordan reduces [A | I] to [I | A⁻¹] with partial pivoting.
	MethodGaussJordan
)

// String returns a short name for the method.
func (m InverseMethod) String() string {
	switch m {
	case MethodLU:
		return "lu"
	case MethodGaussJordan:
		return "gauss-jordan"
	default:
		return "unknown"
	}
}

// Metric is a dissimilarity between two profile vectors.
type Metric int

const (
	// Euclidean is sqrt(Σ (x−y)²).
	Euclidean Metric = iota
	// Manhattan is Σ |x−y|.
	Manhattan
	// Hamming counts positions where x != y.
	Hamming
	// Jaccard is 1 − |x∧y| / |x∨y| over the binarized profiles (0 when both empty).
	Jaccard
	// Chebyshev is max |x−y|.
	Chebyshev
)

// String returns the lower-case metric name.
func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	case Hamming:
		return "hamming"
	case Jaccard:
		return "jaccard"
	case Chebyshev:
		return "chebyshev"
	default:
		return "unknown"
	}
}

// Variables selects which profile describes a vertex in a dissimilarity.
type Variables int

const (
	// Rows uses row i (outgoing ties) as the profile of vertex i.
	Rows Variables = iota
	// Columns uses column i (incoming ties).
	Columns
	// Both concatenates row i and column i.
	Both
)

// String returns the lower-case selector name.
func (v Variables) String() string {
	switch v {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}
