package traverse

import (
	"github.com/katalvlaran/graphio/core"
	"github.com/katalvlaran/graphio/metrics"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Neighbor sequences come from
// core.Graph.Neighbors, so directed graphs are explored along edge
// orientation and results are deterministic (ascending id per level).
//
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context's error on
// cancellation, or any error returned by the OnVisit hook.
// Complexity: O(V + E) plus hook cost.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.NodeID]bool, n),
		res: &Result{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	w.enqueue(start, 0)
	return w.res, w.loop()
}

// enqueue marks id visited at depth d and appends it to the queue.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop drains the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.graph.Counters().Inc(metrics.OpTraverseStep)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return err
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// expand enqueues the unvisited, unfiltered neighbors of item.
func (w *walker) expand(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		// The node was visited moments ago; absence means the caller
		// mutated the graph mid-walk, which the ownership model forbids.
		return err
	}
	for next := range neighbors {
		if w.visited[next] || !w.opts.Filter(item.id, next) {
			continue
		}
		w.res.Parent[next] = item.id
		w.enqueue(next, item.depth+1)
	}
	return nil
}
