// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds depth.
//
// Reachability
//
//	Order contains exactly the nodes of the start node's connected component
//	(subject to filters and depth), each once. Nodes in other components are
//	never visited.
//
// Determinism
//
//	Neighbors are taken from core.NeighborIndices: distinct, in edge
//	insertion order. For a graph produced by package builder the order is
//	therefore reproducible. Parallel edges never enqueue a node twice.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	res, err := bfs.BFS(g, 0, bfs.WithContext(ctx), bfs.WithMaxDepth(2))
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if start is not a node (wraps core.ErrNodeNotFound).
//   - ErrOptionViolation     for a negative MaxDepth.
//   - ctx.Err() on cancellation, wrapped OnVisit errors.
package bfs
