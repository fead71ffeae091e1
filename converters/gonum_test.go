package converters_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/happygraph/bfs"
	"github.com/katalvlaran/happygraph/converters"
	"github.com/katalvlaran/happygraph/core"
	"github.com/katalvlaran/happygraph/record"
)

func fixture(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < 6; i++ {
		g.AddNode(record.Country{Name: "N" + strconv.Itoa(i)})
	}
	for _, p := range [][2]core.NodeIndex{{0, 1}, {1, 0}, {1, 2}, {4, 3}} {
		_, err := g.AddEdge(p[0], p[1], core.KindUnspecified)
		require.NoError(t, err)
	}

	return g
}

func TestToSimple(t *testing.T) {
	s := converters.ToSimple(fixture(t))
	assert.Equal(t, 6, s.Nodes().Len())
	assert.Equal(t, 3, s.Edges().Len(), "parallel 0-1 collapses")
	assert.True(t, s.HasEdgeBetween(0, 1))
	assert.True(t, s.HasEdgeBetween(3, 4))
	assert.False(t, s.HasEdgeBetween(0, 2))
}

func TestToMulti(t *testing.T) {
	m := converters.ToMulti(fixture(t), nil)
	assert.Equal(t, 6, m.Nodes().Len())
	assert.Equal(t, 2, m.LinesBetween(0, 1).Len(), "parallel 0-1 preserved")
	assert.Equal(t, 1, m.LinesBetween(1, 2).Len())
}

func TestComponents(t *testing.T) {
	g := fixture(t)
	comps := converters.Components(g)
	assert.Equal(t, [][]core.NodeIndex{{0, 1, 2}, {3, 4}, {5}}, comps)

	// Every component equals the BFS reach of any of its members.
	for _, comp := range comps {
		for _, v := range comp {
			res, err := bfs.BFS(g, v)
			require.NoError(t, err)
			assert.ElementsMatch(t, comp, res.Order)
		}
	}
}
