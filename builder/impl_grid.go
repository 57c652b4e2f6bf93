// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal lattice with 4-neighbourhood.
//   • Cell (r,c) has index r·cols + c (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell emits Right then Bottom ties where the neighbour exists
//     (forward arcs only when directed).
//
// Complexity:
//   • Time: O(rows·cols). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := cfg.vertices(g, methodGrid, rows*cols); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					if err := cfg.tie(g, methodGrid, cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.tie(g, methodGrid, cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
