// SPDX-License-Identifier: MIT
// Package: acopath/builder
//
// impl_path.go — Path(n): n nodes on a horizontal line joined in order.
//
// Determinism:
//   • Nodes left to right, edges (k, k+1) ascending.

package builder

import "github.com/katalvlaran/acopath/core"

// Path returns a Constructor that lays out n nodes spaced cfg.spacing apart.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < MinPathNodes {
			return wrapf(MethodPath, ErrTooFewVertices, "n=%d (must be ≥ %d)", n, MinPathNodes)
		}
		var prev core.NodeID
		for k := 0; k < n; k++ {
			id := l.addNode(cfg, float64(k)*cfg.spacing, 0)
			if k > 0 {
				l.addEdge(prev, id)
			}
			prev = id
		}
		return nil
	}
}
