// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear algebra used by socnet's metrics.
//
// The package offers:
//
//   - Dense, a row-major matrix with error-returning accessors and an explicit
//     NaN/Inf policy (WithAllowInfDistances permits +Inf as "no path").
//   - Arithmetic kernels: Add, Sub, Mul, Scale, Transpose, MatVec, Trace,
//     RowSums, ColSums.
//   - LU factorization with partial pivoting and Inverse via LU or
//     Gauss-Jordan. Singular input returns ErrSingular; no fabricated result.
//   - PowerIteration for the dominant eigenvector.
//   - Graph adapters over a core.Snapshot: Adjacency, Degree, Laplacian,
//     Cocitation.
//   - Tie-profile Dissimilarity (Euclidean, Manhattan, Hamming, Jaccard,
//     Chebyshev) and PearsonCorrelation.
//
// All kernels are deterministic: fixed loop orders, no map iteration, ties
// resolved towards the lowest index.
package matrix
