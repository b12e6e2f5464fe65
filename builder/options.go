// SPDX-License-Identifier: MIT
// Package: acopath/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/acopath/rng"
)

// BuilderOption customizes constructors by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithSpacing sets the distance between neighboring nodes. Panics on s <= 0.
func WithSpacing(s float64) BuilderOption {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic("builder: WithSpacing(s<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithOrigin shifts every generated node by (x, y).
func WithOrigin(x, y float64) BuilderOption {
	return func(c *builderConfig) {
		c.originX, c.originY = x, y
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds both the RNG of stochastic constructors and the jitter noise
// field. Seed 0 maps to rng.DefaultSeed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rng.New(seed)
		c.noise = opensimplex.New(seed)
	}
}

// WithJitter displaces every node by up to amount canvas units along each axis
// using OpenSimplex noise, giving generated worlds an organic look while keeping
// them reproducible. Panics on amount < 0.
func WithJitter(amount float64) BuilderOption {
	if amount < 0 || math.IsNaN(amount) {
		panic("builder: WithJitter(amount<0)")
	}
	return func(c *builderConfig) {
		c.jitter = amount
	}
}

// WithNoiseScale sets the canvas-to-noise frequency used by WithJitter.
// Panics on scale <= 0.
func WithNoiseScale(scale float64) BuilderOption {
	if scale <= 0 {
		panic("builder: WithNoiseScale(scale<=0)")
	}
	return func(c *builderConfig) {
		c.noiseScale = scale
	}
}

// WithDiagonals makes Grid also join each cell to its lower-right and lower-left
// neighbors, giving ants shortcuts of length spacing·√2.
func WithDiagonals() BuilderOption {
	return func(c *builderConfig) {
		c.diagonals = true
	}
}
