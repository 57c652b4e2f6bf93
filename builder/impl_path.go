// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2; ties i—(i+1) for i = 0..n−2.
//   - Cycle: n ≥ 3; the path plus the closing tie (n−1)—0.
//   - Directed mode orients every tie forward (i → i+1, n−1 → 0).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor for the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

// chain adds vertices 0..n−1 and the consecutive ties, closing the ring
// when closed is set. Shared by Path, Cycle and Wheel.
func chain(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	if err := cfg.vertices(g, method, n); err != nil {
		return err
	}
	for i := 0; i+1 < n; i++ {
		if err := cfg.tie(g, method, i, i+1); err != nil {
			return err
		}
	}
	if closed {
		return cfg.tie(g, method, n-1, 0)
	}

	return nil
}
