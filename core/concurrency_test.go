package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGraph_ConcurrentReaders runs many readers over a built graph.
// Run with -race to check the read paths.
func TestGraph_ConcurrentReaders(t *testing.T) {
	g := newNodes(t, 20)
	for i := 1; i < 20; i++ {
		mustEdge(t, g, 0, coreIndex(i))
	}

	var wg sync.WaitGroup
	degrees := make([]int, 8)
	for w := 0; w < len(degrees); w++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			d, err := g.Degree(0)
			if err == nil {
				degrees[slot] = d
			}
			_ = g.AdjacencyList()
			_ = g.Stats()
		}(w)
	}
	wg.Wait()

	for _, d := range degrees {
		require.Equal(t, 19, d)
	}
}
