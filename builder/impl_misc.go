// SPDX-License-Identifier: MIT
// Package: acopath/builder
//
// impl_misc.go — Triangle, RandomSparse and Connect.

package builder

import (
	"math"

	"github.com/katalvlaran/acopath/core"
)

// Triangle returns a Constructor for the equilateral triangle with side
// cfg.spacing: nodes (0,0), (s,0), (s/2, s·√3/2); edges 0—1, 1—2, 2—0.
// With start 0 and end 2 the direct edge is the unique shortest route.
func Triangle() Constructor {
	return func(l *Layout, cfg builderConfig) error {
		s := cfg.spacing
		a := l.addNode(cfg, 0, 0)
		b := l.addNode(cfg, s, 0)
		c := l.addNode(cfg, s/2, s*math.Sqrt(3)/2)
		l.addEdge(a, b)
		l.addEdge(b, c)
		l.addEdge(c, a)
		return nil
	}
}

// RandomSparse returns a Constructor that scatters n nodes uniformly over a
// square of side spacing·√n and joins each pair (i < j) with probability p.
// Requires WithSeed or WithRand. Connectivity is not guaranteed; pair it with
// Connect or the loader's reachability check.
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < MinRandomNodes {
			return wrapf(MethodRandomSparse, ErrTooFewVertices, "n=%d (must be ≥ %d)", n, MinRandomNodes)
		}
		if p < MinProbability || p > MaxProbability || math.IsNaN(p) {
			return wrapf(MethodRandomSparse, ErrInvalidProbability, "p=%v", p)
		}
		if cfg.rng == nil {
			return wrapf(MethodRandomSparse, ErrNeedRandSource, "n=%d", n)
		}

		side := cfg.spacing * math.Sqrt(float64(n))
		ids := make([]core.NodeID, n)
		for i := range ids {
			x := cfg.rng.Float64() * side
			y := cfg.rng.Float64() * side
			ids[i] = l.addNode(cfg, x, y)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					l.addEdge(ids[i], ids[j])
				}
			}
		}
		return nil
	}
}

// Connect returns a Constructor that adds the edge a—b between nodes already in
// the layout.
func Connect(a, b core.NodeID) Constructor {
	return func(l *Layout, _ builderConfig) error {
		if !l.has(a) || !l.has(b) {
			return wrapf(MethodConnect, ErrUnknownNode, "%d—%d (layout has %d nodes)", a, b, len(l.Nodes))
		}
		l.addEdge(a, b)
		return nil
	}
}
