// Package config defines SimulationConfig, the immutable parameter set of a colony
// run, together with its defaults, validation and file loading.
//
// A SimulationConfig is a plain value. A running simulation never reads ambient
// globals; runtime adjustments go through colony.Simulation.UpdateConfig, which
// validates the replacement first.
//
// Files may be YAML (.yaml, .yml) or JSON (.json); keys are snake_case.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// IncrementStrategy selects how much pheromone a completed round trip deposits per
// edge. P is the trip length, C the longest edge of the graph, Pb the global best.
type IncrementStrategy string

const (
	// Constant deposits 1.
	Constant IncrementStrategy = "constant"
	// InverseCost deposits 1/P.
	InverseCost IncrementStrategy = "inverse_cost"
	// MaxEdgeNormalized deposits C/P.
	MaxEdgeNormalized IncrementStrategy = "max_edge_normalized"
	// BestPathNormalized deposits Pb/P.
	BestPathNormalized IncrementStrategy = "best_path_normalized"
)

// Strategies lists every IncrementStrategy in presentation order.
func Strategies() []IncrementStrategy {
	return []IncrementStrategy{Constant, InverseCost, MaxEdgeNormalized, BestPathNormalized}
}

// ParseStrategy accepts a strategy name case-insensitively; "-" is read as "_".
func ParseStrategy(s string) (IncrementStrategy, error) {
	norm := IncrementStrategy(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, st := range Strategies() {
		if st == norm {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown pheromone increment strategy %q", ErrInvalidConfig, s)
}

// SimulationConfig holds every knob the engine reads.
type SimulationConfig struct {
	// Alpha is the pheromone-influence exponent in neighbor selection.
	Alpha float64 `json:"alpha" yaml:"alpha" validate:"gte=0"`

	// Beta is the inverse-length-influence exponent in neighbor selection.
	Beta float64 `json:"beta" yaml:"beta" validate:"gte=0"`

	// EvaporationRatePerSecond is the multiplicative factor applied to every edge once
	// per simulated second (0.98 keeps 98% of the pheromone).
	EvaporationRatePerSecond float64 `json:"evaporation_rate_per_second" yaml:"evaporation_rate_per_second" validate:"gte=0,lte=1"`

	// MinPheromoneLevel is the enforced floor and the initial level of every edge.
	MinPheromoneLevel float64 `json:"min_pheromone_level" yaml:"min_pheromone_level" validate:"gt=0"`

	// MaxPheromoneLevel is the declared ceiling; only enforced with ClampToMax.
	MaxPheromoneLevel float64 `json:"max_pheromone_level" yaml:"max_pheromone_level" validate:"gtfield=MinPheromoneLevel"`

	// ClampToMax enables ceiling enforcement on deposits.
	ClampToMax bool `json:"clamp_to_max" yaml:"clamp_to_max"`

	// AntSpeed is the per-tick movement step in canvas units. 0 freezes motion but not
	// state transitions of ants already sitting on a node.
	AntSpeed float64 `json:"ant_speed" yaml:"ant_speed" validate:"gte=0"`

	// IncrementStrategy selects the pheromone deposit formula.
	IncrementStrategy IncrementStrategy `json:"pheromone_increment_strategy" yaml:"pheromone_increment_strategy" validate:"oneof=constant inverse_cost max_edge_normalized best_path_normalized"`

	// TickIntervalMS is the real-time length of one tick; it drives the evaporation
	// cadence and the pacing of Drive.
	TickIntervalMS int `json:"tick_interval_ms" yaml:"tick_interval_ms" validate:"gt=0,lte=60000"`

	// Ants is the number of agents created at simulation start.
	Ants int `json:"ants" yaml:"ants" validate:"gte=1,lte=100000"`

	// Seed feeds the shared random source; 0 selects rng.DefaultSeed.
	Seed int64 `json:"seed" yaml:"seed"`

	// StaggerStart releases one ant per tick from the nest instead of all at once.
	StaggerStart bool `json:"stagger_start" yaml:"stagger_start"`
}

// Default returns the parameters of the reference simulation: alpha = beta = 1,
// 0.98 evaporation per second, floor 0.001, ceiling 1 (not enforced), speed 10,
// constant increment, 25 ms ticks.
func Default() SimulationConfig {
	return SimulationConfig{
		Alpha:                    1,
		Beta:                     1,
		EvaporationRatePerSecond: 0.98,
		MinPheromoneLevel:        0.001,
		MaxPheromoneLevel:        1,
		ClampToMax:               false,
		AntSpeed:                 10,
		IncrementStrategy:        Constant,
		TickIntervalMS:           25,
		Ants:                     10,
		Seed:                     0,
		StaggerStart:             true,
	}
}

// TicksPerSecond returns round(1000 / TickIntervalMS), never less than 1.
func (c SimulationConfig) TicksPerSecond() int {
	if c.TickIntervalMS <= 0 {
		return 1
	}
	tps := int(math.Round(1000 / float64(c.TickIntervalMS)))
	if tps < 1 {
		return 1
	}
	return tps
}

// Load reads a config file on top of Default(). Fields absent from the file keep
// their default values. The result is validated.
func Load(path string) (SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SimulationConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		return SimulationConfig{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return SimulationConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return SimulationConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg SimulationConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
