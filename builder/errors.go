// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, points)
// is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidParameter indicates a non-size parameter out of its domain
// (e.g., radius <= 0).
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrVertexIndex indicates a segment referring to a point that does not exist.
var ErrVertexIndex = errors.New("builder: vertex index out of range")

// ErrDegenerateEdge indicates a segment that cannot be embedded: zero length,
// a repeat of another segment, or overlapping another segment at a point.
var ErrDegenerateEdge = errors.New("builder: degenerate edge")

// ErrConstructFailed indicates a construction that could not proceed at all
// (e.g., a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
