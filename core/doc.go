// Package core provides the in-memory graph shared by every analysis
// package: an arena of country records indexed by a dense NodeIndex, an
// undirected edge catalog, and per-node adjacency buckets.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected and unweighted; self-loops are always rejected.
//   - Parallel edges are opt-in (WithMultiEdges). The builder enables them by
//     default so that a pair joined by two construction policies keeps two
//     edges (an edge multiset).
//   - Nodes are appended, never removed, so NodeIndex values stay dense
//     (0..NodeCount()-1) and stable for the lifetime of the graph.
//   - Records are stored by value; Node(i) hands out copies.
//
// Core Methods:
//
//	// Nodes
//	AddNode(rec record.Country) NodeIndex          // O(1)
//	HasNode(i NodeIndex) bool                      // O(1)
//	Node(i NodeIndex) (record.Country, error)      // O(1)
//	Nodes() []Node                                 // O(V)
//	NodeCount() int                                // O(1)
//
//	// Edges
//	AddEdge(from, to NodeIndex, kind EdgeKind) (int, error) // O(1)†
//	HasEdge(u, v NodeIndex) bool                   // O(min deg)
//	Edges() []Edge                                 // O(E)
//	EdgeCount() int                                // O(1)
//
//	// Neighborhood & degree
//	Neighbors(i) ([]NodeIndex, error)        // one entry per incident edge
//	NeighborIndices(i) ([]NodeIndex, error)  // distinct, first-seen order
//	Degree(i) (int, error)                   // parallel edges counted separately
//	Degrees() []int                          // handshake: sum == 2·EdgeCount()
//
//	† O(min deg) when multi-edges are disabled (duplicate check).
//
// Errors:
//
//	ErrNodeNotFound        – index never assigned
//	ErrLoopNotAllowed      – from == to
//	ErrMultiEdgeNotAllowed – parallel edge without WithMultiEdges
//
// Concurrency: a single RWMutex guards the arena, catalog and adjacency.
// Mutation is expected only while building; afterwards any number of readers
// may share the graph.
package core
