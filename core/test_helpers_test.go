// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/happygraph/core"
	"github.com/katalvlaran/happygraph/record"
)

// country returns a minimal record with the given name, region and score.
func country(name, region string, score float64) record.Country {
	return record.Country{Name: name, Region: region, HappinessScore: score}
}

// newNodes builds a graph with n unnamed-region nodes "N0".."Nn-1".
func newNodes(t *testing.T, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i := 0; i < n; i++ {
		idx := g.AddNode(country(string(rune('A'+i)), "R", float64(i)))
		require.Equal(t, core.NodeIndex(i), idx)
	}

	return g
}

// mustEdge adds u-v and fails the test on error.
func mustEdge(t *testing.T, g *core.Graph, u, v core.NodeIndex) int {
	t.Helper()
	id, err := g.AddEdge(u, v, core.KindUnspecified)
	require.NoError(t, err)

	return id
}
