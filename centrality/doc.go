// Package centrality computes betweenness centrality for every node of an
// unweighted, undirected core.Graph using Brandes' algorithm.
//
//	C_B(v) = Σ_{s≠v≠t, {s,t} unordered} σ_st(v) / σ_st
//
// Conventions
//
//   - Raw scores by default: the sum over unordered pairs, i.e. the directed
//     accumulation halved. WithNormalized divides by (n−1)(n−2)/2.
//   - Parallel edges are collapsed before counting shortest paths.
//   - Pairs in different components contribute nothing.
//   - Isolated nodes and every node of a graph without edges score 0.
//
// Truncation
//
//	WithMaxIterations(k) processes only sources 0..k−1. Totals are the
//	raw sums over those sources (never rescaled), so a capped score never
//	exceeds the exact one. Result.Scores holds only the nodes reached from
//	some processed source; Result.Exact reports whether k ≥ n.
//
// Complexity: O(V·E) time and O(V+E) memory for an exact run.
package centrality
