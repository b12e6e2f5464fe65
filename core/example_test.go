package core_test

import (
	"fmt"

	"github.com/katalvlaran/acopath/core"
)

func ExampleBuild() {
	g, err := core.Build(
		[]core.RawNode{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 3, Y: 0}, {ID: 2, X: 3, Y: 4}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}},
		0, 2,
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	l, _ := g.PathLength([]core.NodeID{0, 1, 2})
	fmt.Printf("nodes=%d edges=%d longest=%.0f detour=%.0f\n", g.NodeCount(), g.EdgeCount(), g.MaxEdgeLength(), l)

	i, _ := g.EdgeIndex(1, 0)
	g.Deposit(i, 1)
	g.Evaporate(0.5)
	fmt.Printf("edge 0-1 pheromone=%.4f\n", g.Pheromone(i))
	// Output:
	// nodes=3 edges=3 longest=5 detour=7
	// edge 0-1 pheromone=0.5005
}
