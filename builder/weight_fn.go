// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every tie when no WeightFn is given.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a tie weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is not positive: zero-weight ties are never traversed.
func ConstantWeightFn(value float64) WeightFn {
	if !(value > 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 0 < min ≤ max. With a nil rng it yields DefaultEdgeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min > 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn samples integers uniformly in [1, max] (Likert-style tie
// strength). Panics if max < 1. With a nil rng it yields DefaultEdgeWeight.
func IntegerWeightFn(max int) WeightFn {
	if max < 1 {
		panic(fmt.Sprintf("IntegerWeightFn: max must be ≥ 1, got %d", max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(1 + rng.Intn(max))
	}
}
