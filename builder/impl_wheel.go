// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// impl_wheel.go — implementation of Wheel(n, radius, center) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub: a ring of n-1 points around center plus the hub at
//     center, joined by spokes. Hence n ≥ 4.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices); radius > 0 (else ErrInvalidParameter).
//   • Ring points come first (same layout as Ring), the hub last.
//   • Spokes run hub→rim in ring order.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshpath/mtg"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that lays out a wheel with n points in total.
func Wheel(n int, radius float64, center mtg.Point3) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := validatePositive(methodWheel, "radius", radius); err != nil {
			return err
		}

		rim := addRing(l, cfg, n-1, radius, center)
		hub := l.AddPoint(cfg.place(center))
		for k := 0; k < n-1; k++ {
			l.AddSegment(hub, rim+k)
		}

		return nil
	}
}
