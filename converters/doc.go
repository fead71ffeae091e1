// Package converters provides adapters from core.Graph to gonum graph
// representations:
//   - gonum.org/v1/gonum/graph/simple (parallel edges collapse)
//   - gonum.org/v1/gonum/graph/multi  (one line per core edge)
//
// gonum node IDs equal core.NodeIndex values, so results computed on the
// gonum side map straight back. Components uses gonum/graph/topo.
package converters
