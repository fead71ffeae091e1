package converters

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/happygraph/core"
)

// ToSimple exports g as a gonum simple undirected graph.
// Every node is added, isolated ones included; parallel edges collapse into one.
// Complexity: O(V + E).
func ToSimple(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for _, i := range g.NodeIndices() {
		out.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		out.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
	}

	return out
}

// NodeFunc maps a core node to the gonum node stored in a multigraph.
// The returned node's ID() must equal int64(n.Index).
type NodeFunc func(n core.Node) graph.Node

// ToMulti exports g as a gonum undirected multigraph, one line per core edge.
// If nodeFn is nil, plain multi.Node values are used.
// Complexity: O(V + E).
func ToMulti(g *core.Graph, nodeFn NodeFunc) *multi.UndirectedGraph {
	out := multi.NewUndirectedGraph()
	nodes := g.Nodes()
	gnodes := make([]graph.Node, len(nodes))
	for i, n := range nodes {
		if nodeFn != nil {
			gnodes[i] = nodeFn(n)
		} else {
			gnodes[i] = multi.Node(n.Index)
		}
		out.AddNode(gnodes[i])
	}
	for _, e := range g.Edges() {
		out.SetLine(out.NewLine(gnodes[e.From], gnodes[e.To]))
	}

	return out
}

// Components returns the connected components of g. Each component is sorted
// ascending and components are ordered by their smallest index.
// Complexity: O(V + E) plus sorting.
func Components(g *core.Graph) [][]core.NodeIndex {
	raw := topo.ConnectedComponents(ToSimple(g))

	out := make([][]core.NodeIndex, 0, len(raw))
	for _, comp := range raw {
		ids := make([]core.NodeIndex, len(comp))
		for i, n := range comp {
			ids[i] = core.NodeIndex(n.ID())
		}
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
		out = append(out, ids)
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })

	return out
}
