// SPDX-License-Identifier: MIT
// Package: acopath/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(start, end, gopts, bopts, cons...). Resolves cfg, runs cons
//     in order against a Layout, then hands the layout to core.Build.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with the method name.
//
// ID scheme:
//
//	Each constructor appends its nodes with consecutive IDs continuing from the
//	layout's current node count, so the first constructor's nodes are 0..n-1.
//	Connect(a, b) joins nodes added by different constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/acopath/core"
)

// Constructor appends nodes and edges to l using the resolved builderConfig.
// Constructors MUST validate parameters early, emit nodes and edges in a stable
// documented order, and place every node through cfg.place (jitter, origin).
type Constructor func(l *Layout, cfg builderConfig) error

// Build resolves bopts, applies all constructors in order and validates the
// resulting layout with core.Build using gopts.
//
// Errors:
//   - constructor errors wrapped with "builder: %w" (branch with errors.Is
//     against ErrTooFewVertices, ErrInvalidProbability, ...).
//   - core validation errors (*core.ValidationError) wrapped the same way.
func Build(start, end core.NodeID, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	l, err := Compose(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.Build(l.Nodes, l.Edges, start, end, gopts...)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}
	return g, nil
}

// Compose runs the constructors and returns the raw layout without validating it.
// The loader uses it to write generated worlds to disk.
func Compose(bopts []BuilderOption, cons ...Constructor) (*Layout, error) {
	cfg := newBuilderConfig(bopts...)
	l := &Layout{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}
	return l, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)              n nodes on a horizontal line (n ≥ 2).
// Cycle(n)             regular n-gon ring (n ≥ 3).
// Star(n)              hub plus n-1 leaves on a circle (n ≥ 2).
// Wheel(n)             ring of n-1 nodes plus hub with spokes (n ≥ 4).
// Complete(n)          K_n on a circle (n ≥ 2).
// Grid(rows, cols)     4-neighborhood lattice, optional diagonals (rows*cols ≥ 2).
// Triangle()           equilateral triangle 0—1—2—0.
// RandomSparse(n, p)   n scattered nodes, each pair joined with probability p; needs rng.
// Connect(a, b)        one extra edge between existing nodes.
