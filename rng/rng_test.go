package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acopath/rng"
)

func TestNew_SeedDeterminism(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

func TestNew_ZeroSeedUsesDefault(t *testing.T) {
	assert.Equal(t, rng.New(rng.DefaultSeed).Int63(), rng.New(0).Int63())
}

func TestDerive_IndependentStreams(t *testing.T) {
	s0 := rng.Derive(rng.New(7), 0)
	s1 := rng.Derive(rng.New(7), 1)
	assert.NotEqual(t, s0.Int63(), s1.Int63())

	// Same parent and stream ⇒ same child.
	assert.Equal(t, rng.Derive(rng.New(7), 3).Int63(), rng.Derive(rng.New(7), 3).Int63())
}

func TestDeriveSeed_Avalanche(t *testing.T) {
	assert.NotEqual(t, rng.DeriveSeed(1, 0), rng.DeriveSeed(1, 1))
	assert.NotEqual(t, rng.DeriveSeed(1, 0), rng.DeriveSeed(2, 0))
}

func TestFixed_ReplaysAndWraps(t *testing.T) {
	f := rng.NewFixed(0.1, 0.5)
	assert.Equal(t, 0.1, f.Float64())
	assert.Equal(t, 0.5, f.Float64())
	assert.Equal(t, 0.1, f.Float64())
	assert.Equal(t, 3, f.Draws())
}

func TestFixed_RejectsBadValues(t *testing.T) {
	assert.Panics(t, func() { rng.NewFixed() })
	assert.Panics(t, func() { rng.NewFixed(1.0) })
	assert.Panics(t, func() { rng.NewFixed(-0.1) })
}

func TestCounting(t *testing.T) {
	c := &rng.Counting{Source: rng.NewFixed(0.3)}
	c.Float64()
	c.Float64()
	assert.Equal(t, 2, c.N)
}
