// Package centrality computes betweenness centrality with Brandes' algorithm.
package centrality

import (
	"fmt"

	"github.com/katalvlaran/happygraph/core"
)

// brandes holds per-source scratch space reused across sources.
type brandes struct {
	adj   [][]core.NodeIndex
	dist  []int
	sigma []float64
	delta []float64
	pred  [][]core.NodeIndex
	stack []core.NodeIndex
	queue []core.NodeIndex
}

// Betweenness returns the betweenness centrality of the nodes of g.
//
// Implementation:
//   - Stage 1: Snapshot distinct-neighbor adjacency (parallel edges collapse,
//     so they never inflate shortest-path counts).
//   - Stage 2: For each of the first k sources s (ascending index): BFS from s
//     recording dist, sigma (# shortest paths) and predecessors; then pop
//     nodes farthest-first, δ(p) += σ(p)/σ(w)·(1+δ(w)), and add δ(w) to
//     CB(w) for w ≠ s.
//   - Stage 3: Halve (undirected: each pair is seen from both ends), then
//     normalize if requested. A capped run keeps the totals accumulated from
//     its k sources, so every score is bounded by the exact one.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ctx.Err().
//
// Complexity:
//   - Time O(k·(V+E)), Space O(V+E).
func Betweenness(g *core.Graph, opts ...Option) (*Result, error) {
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

	b := newBrandes(g)
	n := len(b.adj)
	k := n
	if o.MaxIterations > 0 && o.MaxIterations < n {
		k = o.MaxIterations
	}

	res := &Result{
		Scores:     make(map[core.NodeIndex]float64, n),
		Sources:    k,
		Exact:      k == n,
		Normalized: o.Normalized,
	}

	for s := 0; s < k; s++ {
		select {
		case <-o.Ctx.Done():
			return nil, fmt.Errorf("centrality: source %d: %w", s, o.Ctx.Err())
		default:
		}
		b.single(core.NodeIndex(s), res.Scores)
	}

	scale := 0.5
	if o.Normalized && n > 2 {
		scale *= 2 / float64((n-1)*(n-2))
	}
	for v := range res.Scores {
		res.Scores[v] *= scale
	}

	return res, nil
}

func newBrandes(g *core.Graph) *brandes {
	adj := g.AdjacencyList()
	n := len(adj)

	return &brandes{
		adj:   adj,
		dist:  make([]int, n),
		sigma: make([]float64, n),
		delta: make([]float64, n),
		pred:  make([][]core.NodeIndex, n),
		stack: make([]core.NodeIndex, 0, n),
		queue: make([]core.NodeIndex, 0, n),
	}
}

// single runs one source: BFS phase then dependency accumulation into cb.
// Every node reached from s gets an entry in cb, even if its dependency is 0.
func (b *brandes) single(s core.NodeIndex, cb map[core.NodeIndex]float64) {
	for i := range b.dist {
		b.dist[i] = -1
		b.sigma[i] = 0
		b.delta[i] = 0
		b.pred[i] = b.pred[i][:0]
	}
	b.stack = b.stack[:0]
	b.queue = append(b.queue[:0], s)
	b.dist[s] = 0
	b.sigma[s] = 1

	for head := 0; head < len(b.queue); head++ {
		v := b.queue[head]
		b.stack = append(b.stack, v)
		for _, w := range b.adj[v] {
			if b.dist[w] < 0 {
				b.dist[w] = b.dist[v] + 1
				b.queue = append(b.queue, w)
			}
			if b.dist[w] == b.dist[v]+1 {
				b.sigma[w] += b.sigma[v]
				b.pred[w] = append(b.pred[w], v)
			}
		}
	}

	// stack holds nodes in non-decreasing distance; pop farthest first.
	for i := len(b.stack) - 1; i >= 0; i-- {
		w := b.stack[i]
		coeff := (1 + b.delta[w]) / b.sigma[w]
		for _, p := range b.pred[w] {
			b.delta[p] += b.sigma[p] * coeff
		}
		if w != s {
			cb[w] += b.delta[w]
		} else if _, ok := cb[w]; !ok {
			cb[w] = 0
		}
	}
}
