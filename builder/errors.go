// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context as "<Method>: <detail>: %w".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyEdges indicates that more distinct edges were requested than the
// vertex count allows.
var ErrTooManyEdges = errors.New("builder: too many edges requested")

// ErrConstructFailed indicates that a build could not proceed (e.g. a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
