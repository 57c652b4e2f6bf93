// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w: "<Method>: <detail>: %w".
//   - Constructors never panic; validation panics are confined to option
//     constructors (WithX...).
//
// Priority when several validations fail:
//   - ErrTooFewVertices first, then ErrInvalidProbability, then
//     ErrNeedRandSource; ErrConstructFailed only for orchestration faults.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates an orchestration fault (nil graph or constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
