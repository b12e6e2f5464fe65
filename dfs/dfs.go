package dfs

import (
	"fmt"

	"github.com/katalvlaran/acopath/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from startID.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, startID core.NodeID, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasNode(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	n := g.NodeCount()
	res := &DFSResult{
		Order:   make([]core.NodeID, 0, n),
		Depth:   make(map[core.NodeID]int, n),
		Parent:  make(map[core.NodeID]core.NodeID, n),
		Visited: make(map[core.NodeID]bool, n),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range g.Nodes() {
			if !res.Visited[v.ID] {
				if err := walker.traverse(v.ID, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(startID, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id core.NodeID, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 5. Explore each neighbor in adjacency order
	for _, nb := range w.graph.Neighbors(id) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb.Node) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nb.Node] {
			w.res.Parent[nb.Node] = id
			if err := w.traverse(nb.Node, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
