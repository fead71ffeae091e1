// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIndices, IncidentEdges).
// Determinism:
//   - Neighbors() follows edge insertion order, one entry per incident edge.
//   - NeighborIndices() is unique and keeps first-seen order.

package core

import "fmt"

// Neighbors returns the opposite endpoint of every edge incident to i,
// in edge insertion order. A node joined to i by k parallel edges appears
// k times.
//
// Errors:
//   - ErrNodeNotFound: if i is out of range.
//
// Complexity: O(deg(i)).
func (g *Graph) Neighbors(i NodeIndex) ([]NodeIndex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(i) {
		return nil, fmt.Errorf("neighbors of node %d: %w", i, ErrNodeNotFound)
	}
	out := make([]NodeIndex, len(g.adjacency[i]))
	for k, eid := range g.adjacency[i] {
		out[k] = g.edges[eid].Other(i)
	}

	return out, nil
}

// NeighborIndices returns the distinct neighbors of i in first-seen order.
// Traversals use this so parallel edges never enqueue a node twice.
//
// Errors:
//   - ErrNodeNotFound: if i is out of range.
//
// Complexity: O(deg(i)).
func (g *Graph) NeighborIndices(i NodeIndex) ([]NodeIndex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(i) {
		return nil, fmt.Errorf("neighbors of node %d: %w", i, ErrNodeNotFound)
	}
	seen := make(map[NodeIndex]struct{}, len(g.adjacency[i]))
	out := make([]NodeIndex, 0, len(g.adjacency[i]))
	for _, eid := range g.adjacency[i] {
		nbr := g.edges[eid].Other(i)
		if _, dup := seen[nbr]; dup {
			continue
		}
		seen[nbr] = struct{}{}
		out = append(out, nbr)
	}

	return out, nil
}

// IncidentEdges returns copies of the edges touching i, in insertion order.
//
// Errors:
//   - ErrNodeNotFound: if i is out of range.
func (g *Graph) IncidentEdges(i NodeIndex) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(i) {
		return nil, fmt.Errorf("incident edges of node %d: %w", i, ErrNodeNotFound)
	}
	out := make([]Edge, len(g.adjacency[i]))
	for k, eid := range g.adjacency[i] {
		out[k] = g.edges[eid]
	}

	return out, nil
}

// AdjacencyList returns a snapshot of distinct neighbors per node, indexed
// by NodeIndex. Slices are freshly allocated.
//
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]NodeIndex {
	n := g.NodeCount()
	out := make([][]NodeIndex, n)
	for i := 0; i < n; i++ {
		// i is always valid here; nodes are never removed.
		out[i], _ = g.NeighborIndices(NodeIndex(i))
	}

	return out
}
