package colony_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/acopath/colony"
	"github.com/katalvlaran/acopath/config"
	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/rng"
)

// ExampleSimulation_Run drives a single ant around a 30-40-50 triangle with a
// scripted random stream that always prefers the detour through node 1.
func ExampleSimulation_Run() {
	g, _ := core.Build(
		[]core.RawNode{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 0, Y: 30}, {ID: 2, X: 40, Y: 30}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2}},
		0, 2,
	)
	cfg := config.Default()
	cfg.Ants = 1
	cfg.StaggerStart = false

	sim, _ := colony.New(g, cfg, colony.WithRand(rng.NewFixed(0.25)))
	_ = sim.Run(context.Background(), 19)

	st := sim.Stats()
	fmt.Printf("best=%.0f path=%v optimal=%.0f trips=%d\n", st.BestLength, st.BestPath, st.OptimalLength, st.Trips)
	// Output: best=70 path=[0 1 2] optimal=50 trips=1
}
