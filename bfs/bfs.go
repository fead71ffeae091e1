// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/happygraph/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeIndex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	head    int
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start core.NodeIndex, opts ...Option) (*BFSResult, error) {
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
		return nil, fmt.Errorf("%w: %d: %w", ErrStartNodeNotFound, start, core.ErrNodeNotFound)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.NodeIndex, 0, n),
			Depth:  make(map[core.NodeIndex]int, n),
			Parent: make(map[core.NodeIndex]core.NodeIndex, n),
		},
	}

	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

// Order is a convenience wrapper returning only the visitation sequence.
func Order(g *core.Graph, start core.NodeIndex) ([]core.NodeIndex, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// enqueue marks id visited at depth d, records its parent,
// calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(id core.NodeIndex, d int, parent core.NodeIndex, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the head item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen, unfiltered neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIndices(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id, true)
	}

	return nil
}
