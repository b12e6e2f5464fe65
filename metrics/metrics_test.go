package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/acopath/colony"
	"github.com/katalvlaran/acopath/config"
	"github.com/katalvlaran/acopath/core"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	if err := g.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.TicksTotal == nil || r.PheromoneHighest == nil || r.RunInfo == nil {
		t.Error("metrics not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestObserveTick(t *testing.T) {
	r := NewRegistry()
	best := 70.0

	r.ObserveTick(&colony.Snapshot{
		Tick:             1,
		HighestPheromone: 0.001,
		TotalPheromone:   0.003,
		Ants:             []colony.AntView{{ID: 0}, {ID: 1}},
	})
	r.ObserveTick(&colony.Snapshot{
		Tick:             2,
		Evaporated:       true,
		HighestPheromone: 1.5,
		TotalPheromone:   2.5,
		Ants:             []colony.AntView{{ID: 0, HasFood: true}, {ID: 1}},
		Edges:            []colony.EdgeView{{From: 0, To: 1, Pheromone: 1.5}, {From: 1, To: 2, Pheromone: 1}},
		BestLength:       &best,
		BestPath:         []core.NodeID{0, 1, 2},
		TripsCompleted:   2,
		Improvements:     []colony.Improvement{{Tick: 2, Length: best}},
	})

	if v := counterValue(t, r.TicksTotal); v != 2 {
		t.Errorf("ticks = %v, want 2", v)
	}
	if v := counterValue(t, r.EvaporationsTotal); v != 1 {
		t.Errorf("evaporations = %v, want 1", v)
	}
	if v := counterValue(t, r.TripsTotal); v != 2 {
		t.Errorf("trips = %v, want 2", v)
	}
	if v := counterValue(t, r.ImprovementsTotal); v != 1 {
		t.Errorf("improvements = %v, want 1", v)
	}
	if v := gaugeValue(t, r.AntsCarryingFood); v != 1 {
		t.Errorf("carrying = %v, want 1", v)
	}
	if v := gaugeValue(t, r.BestPathLength); v != 70 {
		t.Errorf("best length = %v, want 70", v)
	}
	if v := gaugeValue(t, r.BestPathHops); v != 2 {
		t.Errorf("best hops = %v, want 2", v)
	}
	if v := gaugeValue(t, r.PheromoneHighest); v != 1.5 {
		t.Errorf("highest = %v, want 1.5", v)
	}

	var metric dto.Metric
	if err := r.PheromoneEdges.Write(&metric); err != nil {
		t.Fatalf("Failed to write histogram: %v", err)
	}
	if got := metric.Histogram.GetSampleCount(); got != 2 {
		t.Errorf("edge samples = %d, want 2", got)
	}
}

func TestSetRunInfo(t *testing.T) {
	r := NewRegistry()
	r.SetRunInfo("first", "constant", 10)
	r.SetRunInfo("second", "inverse_cost", 20)

	if v := gaugeValue(t, r.AntsTotal); v != 20 {
		t.Errorf("ants = %v, want 20", v)
	}
	g, err := r.RunInfo.GetMetricWithLabelValues("second", "inverse_cost")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if v := gaugeValue(t, g); v != 1 {
		t.Errorf("run_info = %v, want 1", v)
	}

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == "acopath_run_info" && len(mf.GetMetric()) != 1 {
			t.Errorf("run_info series = %d, want 1", len(mf.GetMetric()))
		}
	}
}

func TestRegistryAsObserver(t *testing.T) {
	g, err := core.Build(
		[]core.RawNode{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 10, Y: 0}},
		[]core.RawEdge{{From: 0, To: 1}},
		0, 1,
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r := NewRegistry()
	sim, err := colony.New(g, config.Default(), colony.WithObserver(r))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sim.Run(context.Background(), 80); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if v := counterValue(t, r.TicksTotal); v != 80 {
		t.Errorf("ticks = %v, want 80", v)
	}
	if v := counterValue(t, r.EvaporationsTotal); v != 2 {
		t.Errorf("evaporations = %v, want 2", v)
	}
	if v := gaugeValue(t, r.BestPathLength); v != 10 {
		t.Errorf("best length = %v, want 10", v)
	}
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.TicksTotal.Add(3)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "acopath_ticks_total 3") {
		t.Errorf("exposition missing ticks counter:\n%s", body)
	}
}
