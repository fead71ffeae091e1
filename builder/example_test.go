package builder_test

import (
	"fmt"

	"github.com/katalvlaran/happygraph/builder"
	"github.com/katalvlaran/happygraph/record"
)

// ExampleBuild builds the graph for three countries: two share a region and
// have close scores, so they are joined twice.
func ExampleBuild() {
	store := record.Store{}
	store.Add(record.Country{Name: "Denmark", Region: "Western Europe", HappinessScore: 7.527})
	store.Add(record.Country{Name: "Norway", Region: "Western Europe", HappinessScore: 7.522})
	store.Add(record.Country{Name: "Togo", Region: "Sub-Saharan Africa", HappinessScore: 2.839})

	g, err := builder.Build(store)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%d-%d %s\n", e.From, e.To, e.Kind)
	}
	fmt.Println("degrees:", g.Degrees())

	// Output:
	// 0-1 region
	// 0-1 similarity
	// degrees: [2 2 0]
}
