// Package rng centralizes the random streams used by the colony.
//
// Goals:
//   - Determinism: same seed ⇒ identical ant decisions across runs and platforms.
//   - Injection: every stochastic choice draws from one Source handed in by the caller;
//     nothing falls back to a time-based seed.
//   - Testability: Fixed replays a scripted sequence of draws.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Source is owned by one simulation and is
//     only used under that simulation's lock.
//   - Use Derive to create independent streams (e.g. one per batch run).
package rng

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// Source is the uniform generator consumed by ant decisions.
// Float64 must return values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// New returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier with a SplitMix64 finalizer,
// so neighboring stream ids produce uncorrelated seeds.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic stream from base and a stream id.
// base.Int63() is consumed once so reusing a stream id still yields a fresh child.
// A nil base uses DefaultSeed as the parent.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// Fixed is a Source that replays Values in order and wraps around.
// It exists for tests that need to force a particular branch of a weighted choice.
type Fixed struct {
	Values []float64
	next   int
}

// NewFixed returns a Fixed source over values. Panics on an empty list or a value
// outside [0, 1).
func NewFixed(values ...float64) *Fixed {
	if len(values) == 0 {
		panic("rng: NewFixed() needs at least one value")
	}
	for _, v := range values {
		if v < 0 || v >= 1 {
			panic("rng: NewFixed value outside [0,1)")
		}
	}
	return &Fixed{Values: append([]float64(nil), values...)}
}

// Float64 returns the next scripted value.
func (f *Fixed) Float64() float64 {
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}

// Draws returns how many values have been consumed.
func (f *Fixed) Draws() int { return f.next }

// Counting wraps a Source and counts draws; used to assert that a code path does or
// does not consume randomness.
type Counting struct {
	Source
	N int
}

// Float64 forwards to the wrapped Source.
func (c *Counting) Float64() float64 {
	c.N++
	return c.Source.Float64()
}
