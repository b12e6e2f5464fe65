// Package dijkstra computes exact shortest paths over a core.Graph.
//
// The colony uses it as a reference oracle: the length of the true shortest
// start→end path is the yardstick for the optimality gap of the ants' best trail.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), with lazy decrease-key entries in the heap.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/acopath/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: node ID → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath is set (nil otherwise); a node without
//     predecessor is absent from it.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound.
func Dijkstra(g *core.Graph, opts ...Option) (map[core.NodeID]float64, map[core.NodeID]core.NodeID, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input in a fixed order
	if !cfg.HasSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Prepare state
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.NodeID]float64, g.NodeCount()),
		visited: make(map[core.NodeID]bool, g.NodeCount()),
		pq:      make(nodePQ, 0, g.NodeCount()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[core.NodeID]core.NodeID, g.NodeCount())
	}

	// 4) Run
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// ShortestPath returns the length and node sequence of the shortest path from
// source to target.
func ShortestPath(g *core.Graph, source, target core.NodeID) (float64, []core.NodeID, error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	if !g.HasNode(target) {
		return 0, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, target)
	}
	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return 0, nil, err
	}
	d := dist[target]
	if math.IsInf(d, 1) {
		return 0, nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
	}

	path := []core.NodeID{target}
	for v := target; v != source; {
		v = prev[v]
		path = append(path, v)
	}
	slices.Reverse(path)

	return d, path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[core.NodeID]float64
	prev    map[core.NodeID]core.NodeID
	visited map[core.NodeID]bool
	pq      nodePQ
}

// init sets dist to +Inf everywhere except the source and seeds the heap.
func (r *runner) init() {
	for _, n := range r.g.Nodes() {
		r.dist[n.ID] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unvisited node until the heap is empty or the next
// distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u core.NodeID) {
	for _, nb := range r.g.Neighbors(u) {
		w := r.g.Edge(nb.Edge).Length
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[nb.Node] {
			continue
		}

		r.dist[nb.Node] = newDist
		if r.prev != nil {
			r.prev[nb.Node] = u
		}
		heap.Push(&r.pq, &nodeItem{id: nb.Node, dist: newDist})
	}
}

// nodeItem is a heap entry: a node and a tentative distance.
type nodeItem struct {
	id   core.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist; ties break on the lower id so
// the search order does not depend on push order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
