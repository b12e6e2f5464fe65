package colony

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/acopath/rng"
)

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand replaces the default rng.New(cfg.Seed) stream. Panics on nil.
func WithRand(src rng.Source) Option {
	if src == nil {
		panic("colony: WithRand(nil)")
	}
	return func(s *Simulation) {
		s.src = src
	}
}

// WithLogger sets the logger; the default discards everything. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("colony: WithLogger(nil)")
	}
	return func(s *Simulation) {
		s.log = l
	}
}

// WithObserver registers an observer. May be given several times; observers
// run in registration order. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("colony: WithObserver(nil)")
	}
	return func(s *Simulation) {
		s.observers = append(s.observers, o)
	}
}

// WithRunID fixes the run identifier instead of generating a random one.
func WithRunID(id uuid.UUID) Option {
	return func(s *Simulation) {
		s.runID = id
	}
}
