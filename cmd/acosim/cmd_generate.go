package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/acopath/builder"
	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/loader"
)

var shapes = []string{"path", "cycle", "star", "wheel", "complete", "grid", "triangle", "random"}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a graph file",
		Long: `Generate a graph file from one of the built-in shapes.

Start and end are the two ends of a path, opposite corners of a grid and the
two farthest nodes of any other shape.

Examples:
  acosim generate --shape grid --rows 6 --cols 8 -o grid.json
  acosim generate --shape random --n 40 --p 0.1 --seed 7 --jitter 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, _ := cmd.Flags().GetString("shape")
			n, _ := cmd.Flags().GetInt("n")
			rows, _ := cmd.Flags().GetInt("rows")
			cols, _ := cmd.Flags().GetInt("cols")
			p, _ := cmd.Flags().GetFloat64("p")
			spacing, _ := cmd.Flags().GetFloat64("spacing")
			jitter, _ := cmd.Flags().GetFloat64("jitter")
			seed, _ := cmd.Flags().GetInt64("seed")
			diagonals, _ := cmd.Flags().GetBool("diagonals")
			output, _ := cmd.Flags().GetString("output")

			if spacing <= 0 {
				return fmt.Errorf("invalid spacing: %v (must be > 0)", spacing)
			}
			if jitter < 0 {
				return fmt.Errorf("invalid jitter: %v (must be >= 0)", jitter)
			}
			if p < builder.MinProbability || p > builder.MaxProbability {
				return fmt.Errorf("invalid p: %v (must be in [0, 1])", p)
			}

			bopts := []builder.BuilderOption{
				builder.WithSpacing(spacing),
				builder.WithSeed(seed),
				builder.WithJitter(jitter),
			}
			if diagonals {
				bopts = append(bopts, builder.WithDiagonals())
			}

			doc, err := generate(shape, n, rows, cols, p, bopts)
			if err != nil {
				return err
			}
			if _, err := loader.Validate(doc); err != nil {
				return fmt.Errorf("generated graph is not usable: %w", err)
			}

			w, closeFn, err := openOutput(cmd, output)
			if err != nil {
				return err
			}
			defer closeFn()
			return loader.Write(w, doc)
		},
	}

	cmd.Flags().String("shape", "grid", "Shape: "+strings.Join(shapes, ", "))
	cmd.Flags().Int("n", 10, "Node count for path, cycle, star, wheel, complete and random")
	cmd.Flags().Int("rows", 5, "Grid rows")
	cmd.Flags().Int("cols", 5, "Grid columns")
	cmd.Flags().Float64("p", 0.2, "Edge probability for random")
	cmd.Flags().Float64("spacing", builder.DefaultSpacing, "Distance between neighboring nodes")
	cmd.Flags().Float64("jitter", 0, "Simplex-noise displacement in canvas units")
	cmd.Flags().Int64("seed", 0, "Seed for random shapes and jitter")
	cmd.Flags().Bool("diagonals", false, "Add diagonal edges to grids")
	cmd.Flags().StringP("output", "o", "-", "Output file (- for stdout)")

	return cmd
}

// generate composes the layout for shape and picks its endpoints. The random
// shape is threaded on a path backbone so its end is always reachable.
func generate(shape string, n, rows, cols int, p float64, bopts []builder.BuilderOption) (*loader.Document, error) {
	var cons []builder.Constructor
	switch shape {
	case "path":
		cons = append(cons, builder.Path(n))
	case "cycle":
		cons = append(cons, builder.Cycle(n))
	case "star":
		cons = append(cons, builder.Star(n))
	case "wheel":
		cons = append(cons, builder.Wheel(n))
	case "complete":
		cons = append(cons, builder.Complete(n))
	case "grid":
		cons = append(cons, builder.Grid(rows, cols))
	case "triangle":
		cons = append(cons, builder.Triangle())
	case "random":
		cons = append(cons, builder.RandomSparse(n, p))
		for i := 0; i+1 < n; i++ {
			cons = append(cons, builder.Connect(core.NodeID(i), core.NodeID(i+1)))
		}
	default:
		return nil, fmt.Errorf("unknown shape %q (must be one of %s)", shape, strings.Join(shapes, ", "))
	}

	l, err := builder.Compose(bopts, cons...)
	if err != nil {
		return nil, err
	}

	var start, end core.NodeID
	switch shape {
	case "path":
		start, end = builder.PathEnds(n)
	case "grid":
		start, end = builder.GridCorners(rows, cols)
	case "triangle":
		start, end = 0, 2
	default:
		var ok bool
		if start, end, ok = builder.Farthest(l); !ok {
			return nil, fmt.Errorf("shape %q produced no edges", shape)
		}
	}
	return loader.FromLayout(l, start, end), nil
}
