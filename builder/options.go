// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/socnet/core"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-tie weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithIDOffset shifts vertex ids: index i becomes id offset+i.
// Panics on a negative offset (vertex ids are non-negative).
func WithIDOffset(offset int) BuilderOption {
	if offset < 0 {
		panic("builder: WithIDOffset(offset<0)")
	}
	return func(c *builderConfig) {
		c.offset = offset
	}
}

// WithDirected emits single directed arcs (lower index → higher index for
// symmetric shapes) instead of undirected ties.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.edgeType = core.Directed
	}
}

// WithRelation sends ties to relation rel instead of the current one.
func WithRelation(rel int) BuilderOption {
	return func(c *builderConfig) {
		c.relation = rel
	}
}
