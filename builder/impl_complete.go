// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(a, b) constructors.
//
// Contract:
//   - Complete: n ≥ 1; every unordered pair i<j gets a tie. Directed mode
//     emits both i→j and j→i so the result stays complete.
//   - CompleteBipartite: a, b ≥ 1; left side indices 0..a−1, right side
//     a..a+b−1; ties left—right only (left → right when directed).
//
// Complexity: O(n²) / O(a·b) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := cfg.vertices(g, methodComplete, n); err != nil {
			return err
		}
		directed := cfg.edgeType == core.Directed
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.tie(g, methodComplete, i, j); err != nil {
					return err
				}
				if directed {
					if err := cfg.tie(g, methodComplete, j, i); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if a < minPartitionSize || b < minPartitionSize {
			return fmt.Errorf("%s: a=%d, b=%d < min=%d: %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}
		if err := cfg.vertices(g, methodCompleteBipartite, a+b); err != nil {
			return err
		}
		for i := 0; i < a; i++ {
			for j := a; j < a+b; j++ {
				if err := cfg.tie(g, methodCompleteBipartite, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
