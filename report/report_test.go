package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/happygraph/analysis"
	"github.com/katalvlaran/happygraph/core"
	"github.com/katalvlaran/happygraph/record"
	"github.com/katalvlaran/happygraph/report"
)

func TestWrite_SectionsInOrder(t *testing.T) {
	store := record.Store{}
	store.Add(record.Country{Name: "Country1", Region: "Region1", HappinessRank: 1, HappinessScore: 7.5, GDP: 1.2, Health: 0.8, Family: 1.5, Corruption: 0.2})
	store.Add(record.Country{Name: "Country2", Region: "Region2", HappinessRank: 2, HappinessScore: 6.8, GDP: 1, Health: 0.9, Family: 1.3, Corruption: 0.1})

	res, err := analysis.Run(store)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res))
	out := buf.String()

	want := []string{
		"Country: Country1, Region: Region1, Happiness Score: 7.5, Rank: 1, GDP: 1.2, Health: 0.8, Family: 1.5, Corruption: 0.2\n",
		"Country: Country2, Region: Region2, Happiness Score: 6.8, Rank: 2, GDP: 1, Health: 0.9, Family: 1.3, Corruption: 0.1\n",
		"Node: Country1 (Happiness Score: 7.5)\n",
		"Node: Country2 (Happiness Score: 6.8)\n",
		"Betweenness Centrality:\n",
		"Node: 0, Centrality: 0\n",
		"Node: 1, Centrality: 0\n",
		"graph happiness",
		"Node Degrees:\n",
		"Node 0: Degree 1\n",
		"Node 1: Degree 1\n",
		"Connected Components: 1\n",
		"Component 0: 2 nodes [0 1]\n",
	}
	pos := 0
	for _, s := range want {
		i := strings.Index(out[pos:], s)
		require.GreaterOrEqual(t, i, 0, "missing or out of order: %q", s)
		pos += i + len(s)
	}
}

func TestWrite_EmptyStore(t *testing.T) {
	res, err := analysis.Run(record.Store{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "Betweenness Centrality:\n")
	assert.Contains(t, out, "Node Degrees:\n")
	assert.Contains(t, out, "Connected Components: 0\n")
	assert.NotContains(t, out, "Country:")
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, report.Write(&buf, nil), report.ErrNilResult)

	store := record.Store{}
	store.Add(record.Country{Name: "Chad", Region: "Africa", HappinessScore: 3.667})
	res, err := analysis.Run(store)
	require.NoError(t, err)

	// A traversal that names a node the graph does not hold.
	res.Traversal.Order = append(res.Traversal.Order, core.NodeIndex(7))
	err = report.Write(&buf, res)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
