// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc, which is insertion order.

package core

import "fmt"

// AddEdge creates an undirected edge between from and to and returns its ID.
//
// Steps:
//  1. Validate both endpoints exist (ErrNodeNotFound).
//  2. Reject from == to (ErrLoopNotAllowed).
//  3. If multi-edges are disabled and the pair is already connected,
//     return ErrMultiEdgeNotAllowed.
//  4. Append to the catalog and to both adjacency buckets.
//
// Complexity: O(1) amortized with multi-edges; O(min(deg(from),deg(to)))
// otherwise, for the duplicate check.
func (g *Graph) AddEdge(from, to NodeIndex, kind EdgeKind) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNodeLocked(from) {
		return -1, fmt.Errorf("add edge %d-%d: from: %w", from, to, ErrNodeNotFound)
	}
	if !g.hasNodeLocked(to) {
		return -1, fmt.Errorf("add edge %d-%d: to: %w", from, to, ErrNodeNotFound)
	}
	if from == to {
		return -1, fmt.Errorf("add edge %d-%d: %w", from, to, ErrLoopNotAllowed)
	}
	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return -1, fmt.Errorf("add edge %d-%d: %w", from, to, ErrMultiEdgeNotAllowed)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Kind: kind})
	g.adjacency[from] = append(g.adjacency[from], id)
	g.adjacency[to] = append(g.adjacency[to], id)

	return id, nil
}

// HasEdge reports whether at least one edge connects u and v (either orientation).
// Unknown indices yield false.
func (g *Graph) HasEdge(u, v NodeIndex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(u) || !g.hasNodeLocked(v) {
		return false
	}

	return g.hasEdgeLocked(u, v)
}

// EdgesBetween returns how many edges connect u and v.
func (g *Graph) EdgesBetween(u, v NodeIndex) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(u) || !g.hasNodeLocked(v) {
		return 0
	}
	n := 0
	for _, eid := range g.adjacency[u] {
		if g.edges[eid].Other(u) == v {
			n++
		}
	}

	return n
}

// Edges returns a copy of the edge catalog in ID order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// hasEdgeLocked scans the smaller adjacency bucket. Requires g.mu.
func (g *Graph) hasEdgeLocked(u, v NodeIndex) bool {
	if len(g.adjacency[u]) > len(g.adjacency[v]) {
		u, v = v, u
	}
	for _, eid := range g.adjacency[u] {
		if g.edges[eid].Other(u) == v {
			return true
		}
	}

	return false
}
