// SPDX-License-Identifier: MIT
// Package: acopath/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Model:
//   • Orthogonal lattice, node (r,c) at (c·s, r·s) with ID base + r*cols + c.
//   • For each cell in row-major order emit Right, Bottom, and with WithDiagonals
//     also Bottom-Right and Bottom-Left.
//
// Complexity: O(rows*cols) nodes and edges.

package builder

import "github.com/katalvlaran/acopath/core"

// Grid returns a Constructor for a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < MinGridCells {
			return wrapf(MethodGrid, ErrTooFewVertices, "rows=%d, cols=%d (need ≥ %d cells)", rows, cols, MinGridCells)
		}

		base := l.next()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				l.addNode(cfg, float64(c)*cfg.spacing, float64(r)*cfg.spacing)
			}
		}

		at := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + core.NodeID(at(r, c))
				if c+1 < cols {
					l.addEdge(u, base+core.NodeID(at(r, c+1)))
				}
				if r+1 < rows {
					l.addEdge(u, base+core.NodeID(at(r+1, c)))
				}
				if cfg.diagonals && r+1 < rows {
					if c+1 < cols {
						l.addEdge(u, base+core.NodeID(at(r+1, c+1)))
					}
					if c > 0 {
						l.addEdge(u, base+core.NodeID(at(r+1, c-1)))
					}
				}
			}
		}
		return nil
	}
}
