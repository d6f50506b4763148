// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • spacing   = 1.0        (grid pitch)
//   • origin    = (0,0,0)
//   • heightFn  = nil        (flat, Z from the point itself)
//   • diagonals = false

package builder

import (
	"github.com/katalvlaran/meshpath/mtg"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Distance between neighboring grid points.
	spacing float64
	// Offset added to every generated point.
	origin mtg.Point3
	// Optional terrain: Z = heightFn(x, y) after the origin offset.
	heightFn func(x, y float64) float64
	// Grid cells get one diagonal each when set.
	diagonals bool
}

const defaultSpacing = 1.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing:   defaultSpacing,
		origin:    mtg.Point3{},
		heightFn:  nil,
		diagonals: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place applies the origin offset and the height function to p.
func (c builderConfig) place(p mtg.Point3) mtg.Point3 {
	p.X += c.origin.X
	p.Y += c.origin.Y
	p.Z += c.origin.Z
	if c.heightFn != nil {
		p.Z = c.heightFn(p.X, p.Y)
	}

	return p
}
