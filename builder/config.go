// SPDX-License-Identifier: MIT
// Package: acopath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • spacing   = DefaultSpacing
//   • origin    = (0, 0)
//   • rng       = nil   (pure/deterministic unless seeded)
//   • jitter    = 0     (no displacement)
//   • diagonals = false (Grid)

package builder

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	spacing          float64
	originX, originY float64

	// rng drives stochastic constructors; nil means “no randomness”.
	rng *rand.Rand

	// noise displaces node positions by up to jitter units when jitter > 0.
	noise      opensimplex.Noise
	jitter     float64
	noiseScale float64

	diagonals bool
}

// newBuilderConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing:    DefaultSpacing,
		noiseScale: DefaultNoiseScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.jitter > 0 && cfg.noise == nil {
		cfg.noise = opensimplex.New(0)
	}
	return cfg
}

// place translates a nominal layout position to the canvas: origin offset plus
// simplex-noise displacement. Deterministic for a fixed seed.
func (c builderConfig) place(x, y float64) (float64, float64) {
	if c.jitter > 0 {
		nx, ny := x*c.noiseScale, y*c.noiseScale
		x += c.jitter * c.noise.Eval2(nx, ny)
		y += c.jitter * c.noise.Eval2(nx+noiseOffset, ny+noiseOffset)
	}
	return x + c.originX, y + c.originY
}
