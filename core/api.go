// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the Stats snapshot.

package core

// Multigraph reports whether parallel edges are permitted by policy.
// If false, AddEdge rejects a second edge between the same pair with
// ErrMultiEdgeNotAllowed.
//
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic snapshot of configuration flags and
// catalog sizes, classifying edges by their Kind.
//
// Implementation:
//   - Stage 1: Acquire the read lock and record flags and sizes.
//   - Stage 2: Scan the edge catalog once, counting kinds and repeated pairs.
//
// Complexity:
//   - Time O(E), Space O(E) for the pair set.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		NodeCount:   len(g.nodes),
		EdgeCount:   len(g.edges),
		EdgesByKind: make(map[EdgeKind]int),
	}

	seen := make(map[[2]NodeIndex]struct{}, len(g.edges))
	for _, e := range g.edges {
		stats.EdgesByKind[e.Kind]++
		key := pairKey(e.From, e.To)
		if _, dup := seen[key]; dup {
			stats.ParallelEdges++
			continue
		}
		seen[key] = struct{}{}
	}

	return &stats
}

// pairKey returns the unordered endpoint pair with the smaller index first.
func pairKey(u, v NodeIndex) [2]NodeIndex {
	if u > v {
		u, v = v, u
	}

	return [2]NodeIndex{u, v}
}
