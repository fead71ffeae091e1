// Package report writes the console report of an analysis run.
//
// Sections appear in a fixed order: country listing, BFS order, betweenness
// centrality, DOT description, node degrees and a component summary.
// Numbers are printed in their shortest exact decimal form.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/happygraph/analysis"
	"github.com/katalvlaran/happygraph/record"
)

// ErrNilResult is returned by Write for a nil result.
var ErrNilResult = errors.New("report: result is nil")

// Write renders the full report of res to w. The country listing comes from
// res.Store, the store the run was computed from.
func Write(w io.Writer, res *analysis.Result) error {
	if res == nil {
		return ErrNilResult
	}
	bw := bufio.NewWriter(w)

	Countries(bw, res.Store)
	if err := Traversal(bw, res); err != nil {
		return err
	}
	Centrality(bw, res)
	if len(res.DOT) > 0 {
		_, _ = bw.Write(res.DOT)
		if res.DOT[len(res.DOT)-1] != '\n' {
			_ = bw.WriteByte('\n')
		}
	}
	Degrees(bw, res)
	Components(bw, res)

	return bw.Flush()
}

// Countries lists every record in name order.
func Countries(w io.Writer, store record.Store) {
	for _, c := range store.Sorted() {
		fmt.Fprintf(w, "Country: %s, Region: %s, Happiness Score: %s, Rank: %s, GDP: %s, Health: %s, Family: %s, Corruption: %s\n",
			c.Name, c.Region, num(c.HappinessScore), num(c.HappinessRank),
			num(c.GDP), num(c.Health), num(c.Family), num(c.Corruption))
	}
}

// Traversal prints the BFS visitation order. An index unknown to res.Graph
// means the traversal came from another graph and is reported as an error.
func Traversal(w io.Writer, res *analysis.Result) error {
	if res.Traversal == nil {
		return nil
	}
	for _, v := range res.Traversal.Order {
		c, err := res.Graph.Node(v)
		if err != nil {
			return fmt.Errorf("report: traversal node %d: %w", v, err)
		}
		fmt.Fprintf(w, "Node: %s (Happiness Score: %s)\n", c.Name, num(c.HappinessScore))
	}

	return nil
}

// Centrality prints the computed betweenness scores in index order.
// Absent entries are skipped.
func Centrality(w io.Writer, res *analysis.Result) {
	fmt.Fprintln(w, "Betweenness Centrality:")
	if res.Centrality == nil {
		return
	}
	for _, v := range res.Centrality.Indices() {
		fmt.Fprintf(w, "Node: %d, Centrality: %s\n", v, num(res.Centrality.Scores[v]))
	}
}

// Degrees prints one line per node.
func Degrees(w io.Writer, res *analysis.Result) {
	fmt.Fprintln(w, "Node Degrees:")
	for i, d := range res.Degrees {
		fmt.Fprintf(w, "Node %d: Degree %d\n", i, d)
	}
}

// Components prints the connected-component summary.
func Components(w io.Writer, res *analysis.Result) {
	fmt.Fprintf(w, "Connected Components: %d\n", len(res.Components))
	for i, comp := range res.Components {
		fmt.Fprintf(w, "Component %d: %d nodes %v\n", i, len(comp), comp)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
