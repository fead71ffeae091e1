// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in index order.
//
// Concurrency:
//   - AddNode takes the write lock; queries take the read lock.

package core

import (
	"fmt"

	"github.com/katalvlaran/happygraph/record"
)

// AddNode appends a copy of rec to the arena and returns its index.
//
// Implementation:
//   - Stage 1: Under the write lock, assign index = current node count.
//   - Stage 2: Store rec by value and allocate an empty adjacency bucket.
//
// Behavior highlights:
//   - Indices are dense and never reused; there is no removal.
//   - The record is not validated here; see record.Store.Validate.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(rec record.Country) NodeIndex {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, rec)
	g.adjacency = append(g.adjacency, nil)

	return idx
}

// HasNode reports whether i is an assigned index.
// Complexity: O(1).
func (g *Graph) HasNode(i NodeIndex) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNodeLocked(i)
}

// Node returns a copy of the record stored at i.
//
// Errors:
//   - ErrNodeNotFound: if i is out of range.
func (g *Graph) Node(i NodeIndex) (record.Country, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(i) {
		return record.Country{}, fmt.Errorf("node %d: %w", i, ErrNodeNotFound)
	}

	return g.nodes[i], nil
}

// Nodes returns every node with its record, in index order.
// The returned slice is freshly allocated.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	for i, rec := range g.nodes {
		out[i] = Node{Index: NodeIndex(i), Record: rec}
	}

	return out
}

// NodeIndices returns 0..NodeCount()-1.
func (g *Graph) NodeIndices() []NodeIndex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeIndex, len(g.nodes))
	for i := range out {
		out[i] = NodeIndex(i)
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Degree returns the number of adjacency entries of node i.
//
// Policy:
//   - Each incident edge counts once, so parallel edges count separately.
//   - Self-loops cannot exist (AddEdge rejects them).
//
// Errors:
//   - ErrNodeNotFound: if i is out of range.
//
// Complexity: O(1).
func (g *Graph) Degree(i NodeIndex) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(i) {
		return 0, fmt.Errorf("degree of node %d: %w", i, ErrNodeNotFound)
	}

	return len(g.adjacency[i]), nil
}

// Degrees returns Degree(i) for every node, indexed by NodeIndex.
// Sum(Degrees()) == 2*EdgeCount() always holds.
// Complexity: O(V).
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.adjacency))
	for i, bucket := range g.adjacency {
		out[i] = len(bucket)
	}

	return out
}

// hasNodeLocked requires g.mu to be held.
func (g *Graph) hasNodeLocked(i NodeIndex) bool {
	return i >= 0 && int(i) < len(g.nodes)
}
