// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - offset   = 0          (vertex ids 0..n−1)
//   - rng      = nil        (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn
//   - edgeType = core.Undirected
//   - relation = −1       (the graph's current relation)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/socnet/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// offset is added to every vertex index to form its id.
	offset int
	// rng drives stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// weightFn yields the weight of each emitted tie.
	weightFn WeightFn
	// edgeType is Undirected (both arcs) or Directed (forward arc only).
	edgeType core.EdgeType
	// relation receives the emitted ties; < 0 selects the current relation.
	relation int
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		edgeType: core.Undirected,
		relation: -1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a vertex id.
func (c builderConfig) id(i int) int {
	return c.offset + i
}

// tie emits one tie u—v (or u→v when directed) with a weight drawn from
// weightFn.
func (c builderConfig) tie(g *core.Graph, method string, u, v int) error {
	w := c.weightFn(c.rng)
	opts := []core.EdgeOption{core.WithEdgeType(c.edgeType)}
	if c.relation >= 0 {
		opts = append(opts, core.WithRelation(c.relation))
	}
	if err := g.AddEdge(c.id(u), c.id(v), w, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, c.id(u), c.id(v), w, err)
	}

	return nil
}

// vertices adds ids for indices 0..n−1 that are not present yet.
func (c builderConfig) vertices(g *core.Graph, method string, n int) error {
	for i := 0; i < n; i++ {
		id := c.id(i)
		if g.HasVertex(id) {
			continue
		}
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
		}
	}

	return nil
}
