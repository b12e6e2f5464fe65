package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/acopath/colony"
	"github.com/katalvlaran/acopath/config"
	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/loader"
	"github.com/katalvlaran/acopath/metrics"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation on a graph file",
		Long: `Run a simulation on a graph file.

The configuration starts from the built-in defaults, is overlaid with --config
and finally with any explicitly given flag.

Examples:
  acosim run --graph world.json --ticks 5000
  acosim run --graph world.json --realtime --metrics-addr :9090
  acosim run --graph world.json --snapshots run.jsonl --every 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(cmd)
			if err != nil {
				return err
			}
			graphPath, _ := cmd.Flags().GetString("graph")
			g, err := loader.Load(graphPath)
			if err != nil {
				return fmt.Errorf("failed to load graph: %w", err)
			}
			return runSimulation(cmd, g, cfg)
		},
	}

	cmd.Flags().String("graph", "", "Graph JSON file (required)")
	cmd.Flags().String("config", "", "Simulation config file (.yaml, .yml or .json)")
	cmd.Flags().Int("ants", 0, "Number of ants")
	cmd.Flags().Int64("seed", 0, "Random seed (0 selects the default seed)")
	cmd.Flags().Float64("alpha", 0, "Pheromone influence exponent")
	cmd.Flags().Float64("beta", 0, "Inverse length influence exponent")
	cmd.Flags().Float64("speed", 0, "Ant speed in canvas units per tick")
	cmd.Flags().String("strategy", "", "Pheromone increment strategy: constant, inverse_cost, max_edge_normalized, best_path_normalized")
	cmd.Flags().Int("ticks", 1000, "Ticks to simulate (0 runs until interrupted)")
	cmd.Flags().Bool("realtime", false, "Tick at the configured wall-clock interval")
	cmd.Flags().String("snapshots", "", "Write snapshots as JSON lines to this file (- for stdout)")
	cmd.Flags().Int("every", 1, "Write every n-th snapshot (ticks with a new best path are always written)")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

// loadRunConfig merges defaults, the optional config file and explicit flags.
func loadRunConfig(cmd *cobra.Command) (config.SimulationConfig, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("ants") {
		cfg.Ants, _ = flags.GetInt("ants")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("alpha") {
		cfg.Alpha, _ = flags.GetFloat64("alpha")
	}
	if flags.Changed("beta") {
		cfg.Beta, _ = flags.GetFloat64("beta")
	}
	if flags.Changed("speed") {
		cfg.AntSpeed, _ = flags.GetFloat64("speed")
	}
	if flags.Changed("strategy") {
		name, _ := flags.GetString("strategy")
		st, err := config.ParseStrategy(name)
		if err != nil {
			return cfg, err
		}
		cfg.IncrementStrategy = st
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, g *core.Graph, cfg config.SimulationConfig) error {
	logger := newLogger(cmd)
	ticks, _ := cmd.Flags().GetInt("ticks")
	realtime, _ := cmd.Flags().GetBool("realtime")
	snapPath, _ := cmd.Flags().GetString("snapshots")
	every, _ := cmd.Flags().GetInt("every")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	jsonOut, _ := cmd.Flags().GetBool("json")

	reg := metrics.NewRegistry()
	opts := []colony.Option{colony.WithLogger(logger), colony.WithObserver(reg)}

	var stream *snapshotStream
	if snapPath != "" {
		w, closeFn, err := openOutput(cmd, snapPath)
		if err != nil {
			return err
		}
		defer closeFn()
		stream = newSnapshotStream(w, every)
		opts = append(opts, colony.WithObserver(stream))
	}

	sim, err := colony.New(g, cfg, opts...)
	if err != nil {
		return err
	}
	reg.SetRunInfo(sim.RunID().String(), string(cfg.IncrementStrategy), cfg.Ants)
	if stream != nil {
		if err := stream.writeHeader(sim.RunID().String(), cfg, g); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if metricsAddr != "" {
		shutdown, err := serveMetrics(metricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	start := time.Now()
	if realtime {
		err = sim.Drive(ctx, 0, func(s colony.Snapshot) error {
			if ticks > 0 && s.Tick >= uint64(ticks) {
				return colony.ErrStop
			}
			return nil
		})
	} else {
		err = sim.Run(ctx, ticks)
	}
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted", "run", sim.RunID().String(), "tick", sim.Stats().Tick)
		err = nil
	}
	if err != nil {
		return err
	}
	if stream != nil && stream.err != nil {
		return fmt.Errorf("failed to write snapshots: %w", stream.err)
	}

	st := sim.Stats()
	logger.Info("run finished",
		"run", st.RunID,
		"ticks", st.Tick,
		"trips", st.Trips,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
	)
	return printSummary(cmd.OutOrStdout(), st, jsonOut)
}

// serveMetrics starts a /metrics endpoint and returns its shutdown function.
func serveMetrics(addr string, reg *metrics.Registry, logger *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

// openOutput opens path for writing; "-" is the command's stdout.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

// snapshotStream writes the run header followed by one snapshot per line.
type snapshotStream struct {
	enc   *json.Encoder
	every uint64
	err   error
}

type streamHeader struct {
	RunID   string                  `json:"run_id"`
	Version string                  `json:"version"`
	Config  config.SimulationConfig `json:"config"`
	Graph   *loader.Document        `json:"graph"`
}

func newSnapshotStream(w io.Writer, every int) *snapshotStream {
	if every < 1 {
		every = 1
	}
	return &snapshotStream{enc: json.NewEncoder(w), every: uint64(every)}
}

func (s *snapshotStream) writeHeader(runID string, cfg config.SimulationConfig, g *core.Graph) error {
	return s.enc.Encode(streamHeader{RunID: runID, Version: version, Config: cfg, Graph: loader.FromGraph(g)})
}

// ObserveTick implements colony.Observer. The first write error is kept and
// later snapshots are dropped.
func (s *snapshotStream) ObserveTick(snap *colony.Snapshot) {
	if s.err != nil {
		return
	}
	if snap.Tick%s.every != 0 && len(snap.Improvements) == 0 {
		return
	}
	s.err = s.enc.Encode(snap)
}

type runSummary struct {
	RunID         string        `json:"run_id"`
	Ticks         uint64        `json:"ticks"`
	Trips         int           `json:"trips"`
	Evaporations  int           `json:"evaporations"`
	BestLength    *float64      `json:"best_length"`
	BestPath      []core.NodeID `json:"best_path"`
	OptimalLength *float64      `json:"optimal_length"`
	Gap           *float64      `json:"gap"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func printSummary(w io.Writer, st colony.Stats, jsonOut bool) error {
	sum := runSummary{
		RunID:         st.RunID,
		Ticks:         st.Tick,
		Trips:         st.Trips,
		Evaporations:  st.Evaporations,
		BestLength:    finite(st.BestLength),
		BestPath:      st.BestPath,
		OptimalLength: finite(st.OptimalLength),
		Gap:           finite(st.Gap),
	}
	if jsonOut {
		return json.NewEncoder(w).Encode(sum)
	}

	fmt.Fprintf(w, "run %s: %d ticks, %d trips, %d evaporations\n", sum.RunID, sum.Ticks, sum.Trips, sum.Evaporations)
	if sum.BestLength == nil {
		fmt.Fprintln(w, "best: none yet")
		return nil
	}
	fmt.Fprintf(w, "best: %.3f via %v\n", *sum.BestLength, sum.BestPath)
	if sum.OptimalLength != nil && sum.Gap != nil {
		fmt.Fprintf(w, "optimal: %.3f (gap %.1f%%)\n", *sum.OptimalLength, *sum.Gap*100)
	}
	return nil
}
