// Package render produces a textual DOT description of a core.Graph.
//
// Output is an undirected, non-strict DOT graph: one statement per node
// (ID = NodeIndex, label = country name) and one unlabeled statement per
// edge, so the parallel edges of a multiset graph show up twice.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/katalvlaran/happygraph/converters"
	"github.com/katalvlaran/happygraph/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("render: graph is nil")

// DefaultGraphName is the DOT graph ID used when none is configured.
const DefaultGraphName = "happiness"

// Option configures DOT output.
type Option func(*options)

type options struct {
	name   string
	indent string
	label  func(core.Node) string
}

// WithGraphName sets the DOT graph ID.
func WithGraphName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithIndent sets the per-level indentation string.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

// WithLabel overrides the node label (default: country name).
func WithLabel(fn func(core.Node) string) Option {
	return func(o *options) {
		if fn != nil {
			o.label = fn
		}
	}
}

// labeledNode is a gonum node carrying a DOT label attribute.
type labeledNode struct {
	id    int64
	label string
}

func (n labeledNode) ID() int64 { return n.id }

// Attributes implements encoding.Attributer.
func (n labeledNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.Quote(n.label)}}
}

// DOT renders g in DOT syntax.
// Complexity: O(V + E).
func DOT(g *core.Graph, opts ...Option) ([]byte, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{
		name:   DefaultGraphName,
		indent: "    ",
		label:  func(n core.Node) string { return n.Record.Name },
	}
	for _, opt := range opts {
		opt(&o)
	}

	mg := converters.ToMulti(g, func(n core.Node) graph.Node {
		return labeledNode{id: int64(n.Index), label: o.label(n)}
	})
	out, err := dot.MarshalMulti(mg, o.name, "", o.indent)
	if err != nil {
		return nil, fmt.Errorf("render: marshal dot: %w", err)
	}

	return out, nil
}
