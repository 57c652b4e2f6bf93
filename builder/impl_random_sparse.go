// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n, p): include each admissible tie independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j; self-loops are never drawn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Weights are drawn from the same
//     stream right after a successful trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (no side effects on invalid input).
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices 0..n−1.
		if err := cfg.vertices(g, methodRandomSparse, n); err != nil {
			return err
		}

		// 3) Trials.
		directed := cfg.edgeType == core.Directed
		draw := func() bool {
			switch {
			case p == probMax:
				return true
			case p == probMin:
				return false
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !draw() {
					continue
				}
				if err := cfg.tie(g, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		// 4) Success: deterministic for a fixed seed.
		return nil
	}
}
