package builder

import "github.com/katalvlaran/acopath/core"

// Layout is the raw world under construction: nodes and edges in emission order,
// ready for core.Build.
type Layout struct {
	Nodes []core.RawNode
	Edges []core.RawEdge
}

// next returns the ID the next added node receives.
func (l *Layout) next() core.NodeID { return core.NodeID(len(l.Nodes)) }

// addNode places a node at the nominal position (x, y) and returns its ID.
func (l *Layout) addNode(cfg builderConfig, x, y float64) core.NodeID {
	id := l.next()
	px, py := cfg.place(x, y)
	l.Nodes = append(l.Nodes, core.RawNode{ID: id, X: px, Y: py})
	return id
}

func (l *Layout) addEdge(a, b core.NodeID) {
	l.Edges = append(l.Edges, core.RawEdge{From: a, To: b})
}

func (l *Layout) has(id core.NodeID) bool {
	return id >= 0 && int(id) < len(l.Nodes)
}
