// Package builder generates ACO worlds: deterministic node layouts with edges,
// validated into a core.Graph.
//
// Constructors (Path, Cycle, Star, Wheel, Complete, Grid, Triangle, RandomSparse,
// Connect) append to a Layout in call order; Build hands the result to
// core.Build. Options control spacing, origin, seeding, and an OpenSimplex
// jitter that displaces nodes for a less regular look while staying reproducible
// per seed.
//
// Example:
//
//	start, end := builder.GridCorners(8, 8)
//	g, err := builder.Build(start, end, nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(20), builder.WithDiagonals()},
//	    builder.Grid(8, 8),
//	)
package builder
