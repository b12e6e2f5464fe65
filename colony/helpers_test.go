package colony_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acopath/config"
	"github.com/katalvlaran/acopath/core"
)

// detour builds a 30-40-50 right triangle: start 0, end 2. The direct edge 0—2
// (50) is optimal; the detour 0—1—2 (70) is what a low draw picks at the nest.
func detour(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.Build(
		[]core.RawNode{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 0, Y: 30}, {ID: 2, X: 40, Y: 30}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2}},
		0, 2,
	)
	require.NoError(t, err)
	return g
}

// quiet is the default config with a single eager ant and no evaporation.
func quiet() config.SimulationConfig {
	cfg := config.Default()
	cfg.Ants = 1
	cfg.StaggerStart = false
	cfg.EvaporationRatePerSecond = 1
	return cfg
}

func pheromone(t testing.TB, g *core.Graph, a, b core.NodeID) float64 {
	t.Helper()
	i, ok := g.EdgeIndex(a, b)
	require.True(t, ok, "edge %d-%d missing", a, b)
	return g.Pheromone(i)
}
