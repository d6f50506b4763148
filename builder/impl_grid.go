// SPDX-License-Identifier: MIT
// Package: meshpath/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewVertices).
//   • Point (r,c) sits at (c*spacing, r*spacing) and has index
//     base + r*cols + c, base being the point count at entry.
//   • Emits segments to the right (r,c+1) and upper (r+1,c) neighbors in
//     row-major order; with WithDiagonals also (r,c)→(r+1,c+1) per cell.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/meshpath/mtg"
)

const (
	methodGrid   = "Grid"
	minGridDim   = 1
	minGridCells = 2
)

// Grid returns a Constructor that lays out a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		// 1) Validate parameters early.
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "rows*cols", rows*cols, minGridCells); err != nil {
			return err
		}

		// 2) Points in row-major order.
		base := l.NumPoints()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				l.AddPoint(cfg.place(mtg.Point3{
					X: float64(c) * cfg.spacing,
					Y: float64(r) * cfg.spacing,
				}))
			}
		}
		at := func(r, c int) int { return base + r*cols + c }

		// 3) Right, up and optional diagonal segments.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					l.AddSegment(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					l.AddSegment(at(r, c), at(r+1, c))
				}
				if cfg.diagonals && r+1 < rows && c+1 < cols {
					l.AddSegment(at(r, c), at(r+1, c+1))
				}
			}
		}

		return nil
	}
}

// GridIndex returns the point index of (r,c) in a grid built first with the
// given column count.
func GridIndex(r, c, cols int) int { return r*cols + c }
