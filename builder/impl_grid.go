// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex IDs use the fixed scheme "r,c" (row-major order), not cfg.idFn.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emit Right then Bottom if present.
//
// Complexity: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				d.AddNode(fmt.Sprintf(gridIDFmt, r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					d.AddEdge(u, fmt.Sprintf(gridIDFmt, r, c+1), cfg.weight())
				}
				if r+1 < rows {
					d.AddEdge(u, fmt.Sprintf(gridIDFmt, r+1, c), cfg.weight())
				}
			}
		}

		return nil
	}
}
