// Package happygraph turns a table of per-country happiness indicators into
// an undirected graph and measures its structure.
//
// Two countries are linked when they share a region, and again when their
// happiness scores differ by less than a threshold (1.0 by default), so a
// pair can be connected twice. On that graph happygraph computes:
//
//   - BFS visitation order from a start country
//   - Brandes betweenness centrality, optionally source-capped and normalized
//   - node degrees, counting parallel edges separately
//   - connected components
//   - a Graphviz DOT description
//
// Packages, leaf first:
//
//	record/     - Country value type and the name-keyed Store
//	core/       - dense-index graph arena: nodes, edge multiset, adjacency
//	builder/    - region-clique and score-similarity edge constructors
//	bfs/        - breadth-first traversal with hooks, depth limit, ctx
//	centrality/ - betweenness centrality
//	converters/ - export to gonum graphs, connected components
//	render/     - DOT output via gonum encoding/dot
//	dataset/    - CSV loader with line/field errors
//	analysis/   - the full pipeline with stage-tagged errors and zap logging
//	report/     - console report
//
// Quick example:
//
//	Chile (Latin America, 6.67) ── Mexico (Latin America, 7.19)
//	Togo  (Sub-Saharan Africa, 2.84)
//
//	yields one region edge plus one similarity edge between Chile and
//	Mexico, and an isolated Togo.
//
// The command-line program lives in cmd/happygraph:
//
//	go install github.com/katalvlaran/happygraph/cmd/happygraph@latest
//	happygraph analyze --input 2015.csv
package happygraph
