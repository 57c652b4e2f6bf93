// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star: n ≥ 2; hub is index 0, leaves 1..n−1, spokes hub—leaf in
//     ascending leaf order (hub → leaf when directed).
//   - Wheel: n ≥ 4; the star plus the rim cycle over leaves 1..n−1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
	hubIndex      = 0
)

// Star returns a Constructor for a star with hub index 0 and n−1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		return spokes(g, cfg, methodStar, n)
	}
}

// Wheel returns a Constructor for W_n: hub index 0 joined to a rim C_{n−1}.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := spokes(g, cfg, methodWheel, n); err != nil {
			return err
		}
		// Rim: leaves 1..n−1 in order, closed back to leaf 1.
		for i := 1; i < n-1; i++ {
			if err := cfg.tie(g, methodWheel, i, i+1); err != nil {
				return err
			}
		}

		return cfg.tie(g, methodWheel, n-1, 1)
	}
}

func spokes(g *core.Graph, cfg builderConfig, method string, n int) error {
	if err := cfg.vertices(g, method, n); err != nil {
		return err
	}
	for leaf := 1; leaf < n; leaf++ {
		if err := cfg.tie(g, method, hubIndex, leaf); err != nil {
			return err
		}
	}

	return nil
}
