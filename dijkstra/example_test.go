package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/dijkstra"
)

// ExampleShortestPath finds the optimum a colony is measured against: on a 3-4-5
// right triangle the hypotenuse beats the two legs.
func ExampleShortestPath() {
	g, err := core.Build(
		[]core.RawNode{{ID: 0, X: 0, Y: 0}, {ID: 1, X: 3, Y: 0}, {ID: 2, X: 3, Y: 4}},
		[]core.RawEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 2}},
		0, 2,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	length, path, err := dijkstra.ShortestPath(g, g.Start(), g.End())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("length=%.0f path=%v\n", length, path)
	// Output: length=5 path=[0 2]
}
