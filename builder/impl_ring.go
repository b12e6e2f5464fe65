// SPDX-License-Identifier: MIT
// Package: acopath/builder
//
// impl_ring.go — circular layouts: Cycle, Star, Wheel and Complete.
//
// All four place their ring nodes counter-clockwise starting at angle 0, on a
// circle whose chord between neighbors equals cfg.spacing.

package builder

import (
	"math"

	"github.com/katalvlaran/acopath/core"
)

// ringRadius is the circumradius of a regular k-gon with side s.
func ringRadius(k int, s float64) float64 {
	return s / (2 * math.Sin(math.Pi/float64(k)))
}

// addRing appends k nodes on a circle of radius r centered at (r, r) and returns
// their IDs in angular order.
func addRing(l *Layout, cfg builderConfig, k int, r float64) []core.NodeID {
	ids := make([]core.NodeID, k)
	for i := 0; i < k; i++ {
		theta := 2 * math.Pi * float64(i) / float64(k)
		ids[i] = l.addNode(cfg, r+r*math.Cos(theta), r+r*math.Sin(theta))
	}
	return ids
}

// Cycle returns a Constructor for the ring C_n. Edges: (k, k+1) then (n-1, 0).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < MinCycleNodes {
			return wrapf(MethodCycle, ErrTooFewVertices, "n=%d (must be ≥ %d)", n, MinCycleNodes)
		}
		ids := addRing(l, cfg, n, ringRadius(n, cfg.spacing))
		for k := 0; k < n; k++ {
			l.addEdge(ids[k], ids[(k+1)%n])
		}
		return nil
	}
}

// Star returns a Constructor for a hub with n-1 leaves at distance cfg.spacing.
// The hub is added first. Complexity: O(n).
func Star(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < MinStarNodes {
			return wrapf(MethodStar, ErrTooFewVertices, "n=%d (must be ≥ %d)", n, MinStarNodes)
		}
		r := cfg.spacing
		hub := l.addNode(cfg, r, r)
		for _, leaf := range addRing(l, cfg, n-1, r) {
			l.addEdge(hub, leaf)
		}
		return nil
	}
}

// Wheel returns a Constructor for W_n: a ring of n-1 nodes, then the hub, then
// ring edges followed by spokes. Complexity: O(n).
func Wheel(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < MinWheelNodes {
			return wrapf(MethodWheel, ErrTooFewVertices, "n=%d (must be ≥ %d)", n, MinWheelNodes)
		}
		k := n - 1
		r := ringRadius(k, cfg.spacing)
		ids := addRing(l, cfg, k, r)
		hub := l.addNode(cfg, r, r)
		for i := 0; i < k; i++ {
			l.addEdge(ids[i], ids[(i+1)%k])
		}
		for _, id := range ids {
			l.addEdge(hub, id)
		}
		return nil
	}
}

// Complete returns a Constructor for K_n on a ring; edges (i, j) for i < j in
// lexicographic order. Complexity: O(n²).
func Complete(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return wrapf(MethodComplete, ErrTooFewVertices, "n=%d (must be ≥ %d)", n, MinCompleteNodes)
		}
		ids := addRing(l, cfg, n, ringRadius(n, cfg.spacing))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				l.addEdge(ids[i], ids[j])
			}
		}
		return nil
	}
}
