// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// impl_segments.go - implementation of Segments(points, segments) constructor.
//
// Contract:
//   - At least one point (else ErrTooFewVertices).
//   - Segment endpoints index into points, relative to this constructor
//     (else ErrVertexIndex). Embedding rejects degenerate segments later.
//   - Points are placed through the builder config; segments keep their order
//     and direction.
//
// Complexity:
//   - Time: O(len(points) + len(segments)). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshpath/mtg"
)

const (
	methodSegments   = "Segments"
	minSegmentPoints = 1
)

// Segments returns a Constructor that lays out an arbitrary planar drawing.
func Segments(points []mtg.Point3, segments [][2]int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if err := validateMin(methodSegments, "points", len(points), minSegmentPoints); err != nil {
			return err
		}
		for i, s := range segments {
			if s[0] < 0 || s[0] >= len(points) || s[1] < 0 || s[1] >= len(points) {
				return fmt.Errorf("%s: segment %d (%d→%d) with %d points: %w",
					methodSegments, i, s[0], s[1], len(points), ErrVertexIndex)
			}
		}

		base := l.NumPoints()
		for _, p := range points {
			l.AddPoint(cfg.place(p))
		}
		for _, s := range segments {
			l.AddSegment(base+s[0], base+s[1])
		}

		return nil
	}
}
