// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// impl_path.go - implementation of Path(points) constructor.
//
// Contract:
//   - len(points) ≥ 2 (else ErrTooFewVertices).
//   - Adds the points in order, each placed through the builder config.
//   - Emits segments (i-1) -> i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/meshpath/mtg"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that lays out an open polyline through points.
func Path(points []mtg.Point3) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if err := validateMin(methodPath, "points", len(points), minPathNodes); err != nil {
			return err
		}

		base := l.NumPoints()
		for _, p := range points {
			l.AddPoint(cfg.place(p))
		}
		for i := 1; i < len(points); i++ {
			l.AddSegment(base+i-1, base+i)
		}

		return nil
	}
}
