// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// impl_ring.go — implementation of Ring(n, radius, center) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); radius > 0 (else ErrInvalidParameter).
//   • Point k sits at angle 2πk/n counter-clockwise from +X around center.
//   • Emits segments k→(k+1)%n for k=0..n-1, so the segment nodes trace the
//     inside face of the ring.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"math"

	"github.com/katalvlaran/meshpath/mtg"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring returns a Constructor that lays out a closed n-gon.
func Ring(n int, radius float64, center mtg.Point3) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if err := validateMin(methodRing, "n", n, minRingNodes); err != nil {
			return err
		}
		if err := validatePositive(methodRing, "radius", radius); err != nil {
			return err
		}

		addRing(l, cfg, n, radius, center)

		return nil
	}
}

// addRing appends the ring points and segments; returns the first point index.
func addRing(l *Layout, cfg builderConfig, n int, radius float64, center mtg.Point3) int {
	base := l.NumPoints()
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		l.AddPoint(cfg.place(mtg.Point3{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
			Z: center.Z,
		}))
	}
	for k := 0; k < n; k++ {
		l.AddSegment(base+k, base+(k+1)%n)
	}

	return base
}
