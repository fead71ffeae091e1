package core_test

import (
	"fmt"

	"github.com/katalvlaran/happygraph/core"
	"github.com/katalvlaran/happygraph/record"
)

// coreIndex converts a loop counter to a NodeIndex.
func coreIndex(i int) core.NodeIndex { return core.NodeIndex(i) }

// ExampleGraph demonstrates building a small multigraph and reading degrees.
func ExampleGraph() {
	g := core.NewGraph(core.WithMultiEdges())
	a := g.AddNode(record.Country{Name: "A", Region: "R1", HappinessScore: 7.5})
	b := g.AddNode(record.Country{Name: "B", Region: "R1", HappinessScore: 7.0})
	c := g.AddNode(record.Country{Name: "C", Region: "R2", HappinessScore: 3.0})

	g.AddEdge(a, b, core.KindRegion)
	g.AddEdge(a, b, core.KindSimilarity) // same pair, second policy
	g.AddEdge(b, c, core.KindUnspecified)

	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("degrees:", g.Degrees())
	nbrs, _ := g.NeighborIndices(b)
	fmt.Println("distinct neighbors of B:", nbrs)

	// Output:
	// edges: 3
	// degrees: [2 3 1]
	// distinct neighbors of B: [0 2]
}
