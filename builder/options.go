// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.

package builder

import (
	"math"

	"github.com/katalvlaran/meshpath/mtg"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// any constructor runs.
type BuilderOption func(*builderConfig)

// WithSpacing sets the grid pitch. Panics unless d is finite and > 0.
func WithSpacing(d float64) BuilderOption {
	if !(d > 0) || math.IsInf(d, 0) {
		panic("builder: WithSpacing(d <= 0)")
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithOrigin offsets every generated point by p.
func WithOrigin(p mtg.Point3) BuilderOption {
	return func(c *builderConfig) {
		c.origin = p
	}
}

// WithHeightFn lifts every generated point to Z = fn(x, y). Panics on nil.
func WithHeightFn(fn func(x, y float64) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithHeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.heightFn = fn
	}
}

// WithDiagonals adds one diagonal per grid cell, from (r,c) to (r+1,c+1).
func WithDiagonals() BuilderOption {
	return func(c *builderConfig) {
		c.diagonals = true
	}
}
