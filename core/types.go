// SPDX-License-Identifier: MIT
// Package core defines the Graph, Node and Edge types used by every
// analysis package, together with sentinel errors and the NewGraph
// constructor.
//
// Errors:
//
//	ErrNodeNotFound        - index outside [0, NodeCount()).
//	ErrLoopNotAllowed      - edge whose endpoints are the same node.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"strconv"
	"sync"

	"github.com/katalvlaran/happygraph/record"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an index that was never assigned.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; graphs are always simple w.r.t. loops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// NodeIndex is the dense, zero-based identifier of a node.
// Indices are assigned in insertion order and are never reused.
type NodeIndex int

// String renders the index in decimal.
func (i NodeIndex) String() string { return strconv.Itoa(int(i)) }

// Node pairs a NodeIndex with the record it wraps.
// Record is a copy owned by the graph arena.
type Node struct {
	Index  NodeIndex
	Record record.Country
}

// EdgeKind records which construction policy produced an edge.
// It is informational only: traversal and scoring ignore it.
type EdgeKind uint8

const (
	// KindUnspecified is the zero value, used by callers that add edges directly.
	KindUnspecified EdgeKind = iota

	// KindRegion marks an edge from the same-region clique policy.
	KindRegion

	// KindSimilarity marks an edge from the score-similarity policy.
	KindSimilarity
)

// String returns a short lowercase name for the kind.
func (k EdgeKind) String() string {
	switch k {
	case KindRegion:
		return "region"
	case KindSimilarity:
		return "similarity"
	default:
		return "unspecified"
	}
}

// Edge is an undirected, unweighted relation between two distinct nodes.
//
// ID is the dense insertion-order position of the edge in the catalog.
// From/To keep the orientation used at insertion time; it carries no meaning.
type Edge struct {
	ID   int
	From NodeIndex
	To   NodeIndex
	Kind EdgeKind
}

// Other returns the endpoint of e opposite to i.
// If i is not an endpoint of e the result is e.From.
func (e Edge) Other(i NodeIndex) NodeIndex {
	if e.From == i {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same pair of nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithCapacity preallocates storage for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]record.Country, 0, n)
			g.adjacency = make([][]int, 0, n)
		}
	}
}

// Graph is an undirected, unweighted graph over an arena of country records.
//
// nodes is the record arena indexed by NodeIndex. edges is the edge catalog
// indexed by Edge.ID. adjacency[i] lists the IDs of edges incident to node i
// in insertion order, one entry per edge (parallel edges repeat).
//
// mu guards all three slices. Analyses only read, so a built graph
// can be shared freely.
type Graph struct {
	mu sync.RWMutex

	allowMulti bool // allow parallel edges

	nodes     []record.Country
	edges     []Edge
	adjacency [][]int
}

// NewGraph creates an empty Graph.
// By default parallel edges are rejected; pass WithMultiEdges to keep them.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of a Graph's flags and sizes.
type GraphStats struct {
	AllowsMulti bool
	NodeCount   int
	EdgeCount   int

	// EdgesByKind counts edges per construction policy.
	EdgesByKind map[EdgeKind]int

	// ParallelEdges counts edges whose endpoint pair was already connected
	// by an earlier edge.
	ParallelEdges int
}
