// Package bestpath records the shortest start→end path discovered by any ant.
//
// The tracked length starts at +Inf and is monotonically non-increasing: Record only
// replaces the current best with a strictly shorter path. No history is kept.
//
// A Tracker is not safe for concurrent use; colony.Simulation serializes it with the
// tick loop.
package bestpath

import (
	"math"
	"slices"

	"github.com/katalvlaran/acopath/core"
)

// Tracker holds the global best path.
type Tracker struct {
	length   float64
	sequence []core.NodeID
	updates  int
}

// New returns an empty tracker (length +Inf).
func New() *Tracker {
	return &Tracker{length: math.Inf(1)}
}

// Record replaces the best path when length is strictly smaller than the current one
// and reports whether it did. seq is copied.
func (t *Tracker) Record(seq []core.NodeID, length float64) bool {
	if math.IsNaN(length) || !(length < t.length) {
		return false
	}
	t.length = length
	t.sequence = slices.Clone(seq)
	t.updates++
	return true
}

// Length returns the best length, +Inf before the first Record.
func (t *Tracker) Length() float64 { return t.length }

// Sequence returns a copy of the best node sequence (nil before the first Record).
func (t *Tracker) Sequence() []core.NodeID { return slices.Clone(t.sequence) }

// Found reports whether any path has been recorded.
func (t *Tracker) Found() bool { return !math.IsInf(t.length, 1) }

// Updates returns how many times the best path improved.
func (t *Tracker) Updates() int { return t.updates }

// Reset forgets the best path.
func (t *Tracker) Reset() {
	t.length = math.Inf(1)
	t.sequence = nil
	t.updates = 0
}
