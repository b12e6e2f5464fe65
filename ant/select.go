package ant

import (
	"math"
	"slices"

	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/rng"
)

// Choice is one eligible next hop with its raw roulette weight and its normalized
// probability.
type Choice struct {
	Node        core.NodeID
	Edge        int
	Weight      float64
	Probability float64
}

// Choices returns the eligible neighbors of current with their selection weights
//
//	w = pheromone^alpha * (1/length)^beta
//
// in adjacency order. The node the ant came from (last) is excluded unless current
// is the graph's start node. Probabilities are w/sum(w); when the sum is not a
// positive finite number every choice gets the uniform probability.
func Choices(g *core.Graph, current, last core.NodeID, alpha, beta float64) []Choice {
	nbs := g.Neighbors(current)
	atStart := current == g.Start()

	out := make([]Choice, 0, len(nbs))
	var sum float64
	for _, nb := range nbs {
		if !atStart && nb.Node == last {
			continue
		}
		e := g.Edge(nb.Edge)
		w := math.Pow(e.Pheromone, alpha) * math.Pow(1/e.Length, beta)
		out = append(out, Choice{Node: nb.Node, Edge: nb.Edge, Weight: w})
		sum += w
	}

	if sum > 0 && !math.IsInf(sum, 1) {
		for i := range out {
			out[i].Probability = out[i].Weight / sum
		}
		return out
	}
	for i := range out {
		out[i].Probability = 1 / float64(len(out))
	}
	return out
}

// SelectNext picks the node an ant standing on current moves to next.
//
// When exactly one neighbor is eligible (a dead end, or a corridor node once the
// came-from node is excluded) it is returned without consuming a random draw.
// Otherwise one value u is drawn from src and the first choice whose cumulative
// probability reaches u wins. If rounding leaves the final cumulative sum below u
// the last eligible choice is returned.
func SelectNext(g *core.Graph, current, last core.NodeID, alpha, beta float64, src rng.Source) core.NodeID {
	nbs := g.Neighbors(current)
	switch len(nbs) {
	case 0:
		return current
	case 1:
		return nbs[0].Node
	}

	choices := Choices(g, current, last, alpha, beta)
	switch len(choices) {
	case 0:
		return last
	case 1:
		return choices[0].Node
	}

	u := src.Float64()
	var cum float64
	for _, c := range choices {
		cum += c.Probability
		if u <= cum {
			return c.Node
		}
	}
	return choices[len(choices)-1].Node
}

// AppendTrimmed appends node to path. If node already occurs in path, everything
// from its first occurrence onward is dropped first, so the trail never contains a
// cycle. The input slice may be reused.
func AppendTrimmed(path []core.NodeID, node core.NodeID) []core.NodeID {
	if i := slices.Index(path, node); i >= 0 {
		path = path[:i]
	}
	return append(path, node)
}
