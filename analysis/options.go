package analysis

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/happygraph/builder"
	"github.com/katalvlaran/happygraph/dataset"
	"github.com/katalvlaran/happygraph/render"
)

// Option configures a pipeline run.
type Option func(*Options)

// Options holds the parameters of a Run.
type Options struct {
	// Ctx is forwarded to the traversal and centrality stages.
	Ctx context.Context

	// Logger receives one entry per stage. Nil means zap.NewNop().
	Logger *zap.Logger

	// Start names the BFS start country; empty selects node 0.
	Start string

	// Threshold is the similarity bound passed to builder.ScoreSimilarity.
	Threshold float64

	// MaxIterations caps centrality sources; 0 is unlimited.
	MaxIterations int

	Normalized bool
	Dedupe     bool

	// GraphName is the DOT graph identifier.
	GraphName string

	// Columns is used by RunFile only.
	Columns dataset.Columns

	err error
}

// DefaultOptions mirrors the classic analysis: threshold 1.0, 200 sources,
// raw scores, edge multiset.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Threshold:     builder.DefaultSimilarityThreshold,
		MaxIterations: 200,
		GraphName:     render.DefaultGraphName,
		Columns:       dataset.DefaultColumns(),
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the stage logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithStart selects the BFS start country by name.
func WithStart(name string) Option {
	return func(o *Options) { o.Start = name }
}

// WithThreshold sets the similarity threshold. It must be finite and > 0.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			o.err = fmt.Errorf("%w: threshold=%v", ErrOptionViolation, t)
			return
		}
		o.Threshold = t
	}
}

// WithMaxIterations caps centrality sources (0 = unlimited, <0 invalid).
func WithMaxIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: max iterations=%d", ErrOptionViolation, k)
			return
		}
		o.MaxIterations = k
	}
}

// WithNormalized enables normalized betweenness scores.
func WithNormalized(on bool) Option {
	return func(o *Options) { o.Normalized = on }
}

// WithDedupe selects the edge-set convention.
func WithDedupe(on bool) Option {
	return func(o *Options) { o.Dedupe = on }
}

// WithGraphName sets the DOT graph name.
func WithGraphName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.GraphName = name
		}
	}
}

// WithColumns overrides CSV header names for RunFile.
func WithColumns(c dataset.Columns) Option {
	return func(o *Options) { o.Columns = c }
}
