// SPDX-License-Identifier: MIT
// Package matrix: adapters from a core.Snapshot to dense graph matrices.
//
// Row/column i always corresponds to snapshot index i (vertex id s.ID(i)).
// An empty snapshot yields a legal 0×0 matrix.

package matrix

import "github.com/katalvlaran/socnet/core"

// Adjacency returns the n×n adjacency matrix of s.
//
// Implementation:
//   - Stage 1: allocate n×n zeros.
//   - Stage 2: for every arc i→j write w, 1 (WithBinary) or 1/w (WithInvertWeights).
//
// Errors:
//   - ErrNilSnapshot.
//
// Complexity:
//   - Time O(n² + E), Space O(n²).
func Adjacency(s *core.Snapshot, opts ...Option) (*Dense, error) {
	if s == nil {
		return nil, matrixErrorf(opGraph, ErrNilSnapshot)
	}
	o := gatherOptions(opts...)
	n := s.N()
	a := newDenseZeroOK(n, n, opts...)
	for i := 0; i < n; i++ {
		for _, arc := range s.Out(i) {
			a.data[i*n+arc.Peer] = o.cellWeight(arc.Weight)
		}
	}

	return a, nil
}

// cellWeight maps an arc weight under the adapter policy.
func (o Options) cellWeight(w float64) float64 {
	switch {
	case o.binary:
		return 1
	case o.invertWeights && w != 0:
		return 1 / w
	default:
		return w
	}
}

// Degree returns the diagonal out-degree matrix D with D[i,i] = Σ_j A[i,j].
// Options are forwarded to Adjacency.
func Degree(s *core.Snapshot, opts ...Option) (*Dense, error) {
	a, err := Adjacency(s, opts...)
	if err != nil {
		return nil, err
	}
	n := a.r
	d := newDenseZeroOK(n, n, opts...)
	for i := 0; i < n; i++ {
		var sum float64
		for _, v := range a.RawRow(i) {
			sum += v
		}
		d.data[i*n+i] = sum
	}

	return d, nil
}

// Laplacian returns L = D − A.
func Laplacian(s *core.Snapshot, opts ...Option) (*Dense, error) {
	a, err := Adjacency(s, opts...)
	if err != nil {
		return nil, err
	}
	n := a.r
	l := newDenseZeroOK(n, n, WithNoValidateNaNInf())
	for i := 0; i < n; i++ {
		var deg float64
		for j := 0; j < n; j++ {
			deg += a.data[i*n+j]
			l.data[i*n+j] = -a.data[i*n+j]
		}
		l.data[i*n+i] += deg
	}

	return l, nil
}

// Cocitation returns C = AᵀA: C[i,j] counts the vertices that send ties to
// both i and j (weighted sum under a weighted adjacency). The diagonal holds
// the in-degree.
// Complexity: O(n³).
func Cocitation(s *core.Snapshot, opts ...Option) (*Dense, error) {
	a, err := Adjacency(s, opts...)
	if err != nil {
		return nil, err
	}
	if a.r == 0 {
		return a, nil
	}
	at, err := Transpose(a)
	if err != nil {
		return nil, err
	}

	return Mul(at, a)
}
