// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and for the
// snapshot→matrix adapters. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - Numeric policy is orthogonal and explicit:
//   - validateNaNInf controls whether Set()/Apply reject NaN/Inf at all.
//   - allowInfDistances is a narrow exception for +Inf as “no path” in
//     distance matrices. Under validation, NaN and -Inf remain rejected.
//   - Adapter policy:
//   - weights are exported as stored unless WithBinary() is given.
//   - WithInvertWeights() exports 1/w (weights read as distances become
//     strengths and vice versa); zero weights stay zero.
package matrix

import "math"

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances permits +Inf values to represent “no path”.
	DefaultAllowInfDistances = false

	// DefaultPivotTolerance is the magnitude below which a pivot counts as zero.
	DefaultPivotTolerance = 1e-12
)

// Adapter policy.
const (
	// DefaultBinary false ⇒ adjacency cells carry arc weights.
	DefaultBinary = false

	// DefaultInvertWeights false ⇒ weights are exported unchanged.
	DefaultInvertWeights = false
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotInvalid   = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	// numeric policy
	eps               float64
	pivotTol          float64
	validateNaNInf    bool
	allowInfDistances bool

	// adapter policy
	binary        bool
	invertWeights bool
}

// WithEpsilon sets the numeric tolerance eps used by structural checks
// (symmetry, non-negativity).
//
// Errors:
//   - Panics with a stable message when eps is invalid.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance sets the magnitude under which a pivot is treated as zero
// by LU and Gauss-Jordan elimination.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithNoValidateNaNInf disables finite-value validation, which is on by
// default, for new matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInfDistances permits +Inf cells (“no path”) while still rejecting
// NaN and -Inf. Used by distance tables.
func WithAllowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = true }
}

// WithBinary exports 1 for every arc regardless of its weight.
func WithBinary() Option {
	return func(o *Options) { o.binary = true }
}

// WithInvertWeights exports 1/w for every arc weight w != 0.
func WithInvertWeights() Option {
	return func(o *Options) { o.invertWeights = true }
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:               DefaultEpsilon,
		pivotTol:          DefaultPivotTolerance,
		validateNaNInf:    DefaultValidateNaNInf,
		allowInfDistances: DefaultAllowInfDistances,
		binary:            DefaultBinary,
		invertWeights:     DefaultInvertWeights,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// rejects reports whether v violates the numeric policy of o.
func (o Options) rejects(v float64) bool {
	if !o.validateNaNInf {
		return false
	}
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return true
	}

	return math.IsInf(v, 1) && !o.allowInfDistances
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
