// Package builder turns a record.Store into a core.Graph.
//
// One node is inserted per record, in ascending country-name order, and then
// edge policies (Constructors) run in the order given:
//
//   - RegionCliques():            every pair sharing a region is connected.
//   - ScoreSimilarity(threshold): every pair with |Δscore| < threshold is connected.
//
// Build(store) applies both with DefaultSimilarityThreshold (1.0).
//
// Duplicate edges: by default the two policies are independent, so a pair in
// the same region with similar scores receives two edges (an edge multiset)
// and both count toward degree. WithDedupe() keeps at most one edge per pair;
// the first policy to reach a pair owns the edge.
//
// Example:
//
//	g, err := builder.Build(store)
//	g, err := builder.BuildGraph(store, []builder.BuilderOption{builder.WithDedupe()},
//	    builder.RegionCliques(), builder.ScoreSimilarity(0.5))
package builder
