// SPDX-License-Identifier: MIT
// Package: acopath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` via wrapf.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller than
// the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownNode indicates that Connect referenced a node not yet in the layout.
var ErrUnknownNode = errors.New("builder: unknown node")

// ErrConstructFailed indicates that the builder could not construct a topology,
// e.g. a nil constructor was passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf returns "<method>: <msg>: <sentinel>" keeping the sentinel for errors.Is.
func wrapf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
