// Package centrality defines options, results and errors for betweenness
// centrality over a core.Graph.
package centrality

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/happygraph/core"
)

// Sentinel errors for centrality computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// Option configures Betweenness via functional arguments.
type Option func(*Options)

// Options holds the parameters of a Betweenness run.
type Options struct {
	// Ctx is checked once per processed source.
	Ctx context.Context

	// MaxIterations caps the number of source nodes processed.
	// 0 means no cap. Sources are taken in ascending NodeIndex order.
	MaxIterations int

	// Normalized rescales scores by 2/((n−1)(n−2)) when n > 2.
	Normalized bool

	err error
}

// DefaultOptions returns an exact, unnormalized configuration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIterations bounds the number of source nodes.
//
//	k > 0: process at most k sources
//	k == 0: no bound (exact)
//	k < 0: invalid option → ErrOptionViolation
func WithMaxIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxIterations = k
	}
}

// WithNormalized enables (n−1)(n−2)/2 normalization.
func WithNormalized() Option {
	return func(o *Options) { o.Normalized = true }
}

// Result holds betweenness scores.
//
// Scores has an entry for node v iff some processed source reached v (every
// source reaches itself). After an exact run every node is present; an
// absent entry means "not computed this run", never "zero".
type Result struct {
	Scores map[core.NodeIndex]float64

	// Sources is the number of source nodes processed.
	Sources int

	// Exact is true when every node was processed as a source.
	Exact bool

	// Normalized mirrors the option used.
	Normalized bool
}

// Score returns the score of v and whether it was computed.
func (r *Result) Score(v core.NodeIndex) (float64, bool) {
	s, ok := r.Scores[v]
	return s, ok
}

// Indices returns the computed node indices in ascending order.
func (r *Result) Indices() []core.NodeIndex {
	out := make([]core.NodeIndex, 0, len(r.Scores))
	for v := range r.Scores {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Max returns the node with the highest score, ties broken by lower index.
// ok is false when nothing was computed.
func (r *Result) Max() (v core.NodeIndex, score float64, ok bool) {
	for _, i := range r.Indices() {
		if s := r.Scores[i]; !ok || s > score {
			v, score, ok = i, s, true
		}
	}

	return v, score, ok
}
