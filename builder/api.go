// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Vertex ids are cfg.offset + index, so several constructors can share one
//     graph when their offsets do not overlap.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to add a second
// relation to a generated network.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// Topology factories (implemented in impl_*.go):
//
//	Path(n)                  P_n, n ≥ 2
//	Cycle(n)                 C_n, n ≥ 3
//	Star(n)                  hub (index 0) and n−1 leaves, n ≥ 2
//	Wheel(n)                 C_{n−1} plus hub (index 0), n ≥ 4
//	Complete(n)              K_n, n ≥ 1
//	CompleteBipartite(a, b)  K_{a,b}, a, b ≥ 1
//	Grid(rows, cols)         4-neighbourhood lattice, row-major ids
//	RandomSparse(n, p)       Erdős–Rényi G(n, p), needs WithSeed for 0 < p < 1
