// Package analysis runs the complete happiness-graph pipeline: build the
// graph, traverse it from a start country, score betweenness centrality,
// count degrees, find components and render DOT.
//
// Every failure is a *StageError naming the step. Run logs one structured
// entry per stage; the lower-level packages never log.
package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/happygraph/bfs"
	"github.com/katalvlaran/happygraph/builder"
	"github.com/katalvlaran/happygraph/centrality"
	"github.com/katalvlaran/happygraph/converters"
	"github.com/katalvlaran/happygraph/core"
	"github.com/katalvlaran/happygraph/dataset"
	"github.com/katalvlaran/happygraph/record"
	"github.com/katalvlaran/happygraph/render"
)

// Result collects every artifact of one run.
type Result struct {
	RunID string
	Store record.Store
	Graph *core.Graph

	// Start is the BFS origin. Traversal is nil for an empty graph.
	Start     core.NodeIndex
	Traversal *bfs.BFSResult

	Centrality *centrality.Result
	Degrees    []int
	Components [][]core.NodeIndex
	DOT        []byte
}

// RunFile loads the CSV at path and runs the pipeline over it.
func RunFile(path string, opts ...Option) (*Result, error) {
	o := resolve(opts)
	if o.err != nil {
		return nil, stageErr(StageValidate, o.err)
	}

	began := time.Now()
	store, err := dataset.Load(path, dataset.WithColumns(o.Columns))
	if err != nil {
		return nil, stageErr(StageLoad, err)
	}
	logger(o).Debug("dataset loaded",
		zap.String("stage", string(StageLoad)),
		zap.String("path", path),
		zap.Int("records", len(store)),
		zap.Duration("elapsed", time.Since(began)),
	)

	return Run(store, opts...)
}

// Run executes all stages over store.
//
// Errors: *StageError wrapping the cause, e.g. record.ErrNotFinite
// (validate), ErrUnknownStart (traverse) or a context error.
func Run(store record.Store, opts ...Option) (*Result, error) {
	o := resolve(opts)
	if o.err != nil {
		return nil, stageErr(StageValidate, o.err)
	}

	res := &Result{RunID: uuid.NewString(), Store: store}
	log := logger(o).With(zap.String("run_id", res.RunID))

	step := func(s Stage, fn func() error) error {
		began := time.Now()
		if err := fn(); err != nil {
			log.Error("stage failed", zap.String("stage", string(s)), zap.Error(err))
			return stageErr(s, err)
		}
		fields := []zap.Field{zap.String("stage", string(s)), zap.Duration("elapsed", time.Since(began))}
		if res.Graph != nil {
			fields = append(fields, zap.Int("nodes", res.Graph.NodeCount()), zap.Int("edges", res.Graph.EdgeCount()))
		}
		log.Debug("stage done", fields...)

		return nil
	}

	if err := step(StageValidate, store.Validate); err != nil {
		return nil, err
	}

	var bopts []builder.BuilderOption
	if o.Dedupe {
		bopts = append(bopts, builder.WithDedupe())
	}
	if err := step(StageBuild, func() (err error) {
		res.Graph, err = builder.BuildGraph(store, bopts,
			builder.RegionCliques(), builder.ScoreSimilarity(o.Threshold))
		return err
	}); err != nil {
		return nil, err
	}
	g := res.Graph

	if err := step(StageTraverse, func() error {
		return traverse(g, o, res)
	}); err != nil {
		return nil, err
	}

	if err := step(StageCentrality, func() (err error) {
		copts := []centrality.Option{
			centrality.WithContext(o.Ctx),
			centrality.WithMaxIterations(o.MaxIterations),
		}
		if o.Normalized {
			copts = append(copts, centrality.WithNormalized())
		}
		res.Centrality, err = centrality.Betweenness(g, copts...)
		return err
	}); err != nil {
		return nil, err
	}

	if err := step(StageDegree, func() error {
		res.Degrees = g.Degrees()
		return nil
	}); err != nil {
		return nil, err
	}

	if err := step(StageComponents, func() error {
		res.Components = converters.Components(g)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := step(StageRender, func() (err error) {
		res.DOT, err = render.DOT(g, render.WithGraphName(o.GraphName))
		return err
	}); err != nil {
		return nil, err
	}

	stats := g.Stats()
	log.Info("analysis complete",
		zap.Int("nodes", stats.NodeCount),
		zap.Int("edges", stats.EdgeCount),
		zap.Int("parallel_edges", stats.ParallelEdges),
		zap.Int("components", len(res.Components)),
		zap.Bool("exact_centrality", res.Centrality.Exact),
	)

	return res, nil
}

// traverse resolves the start node and runs BFS. An empty graph has no
// start and yields a nil Traversal.
func traverse(g *core.Graph, o Options, res *Result) error {
	if g.NodeCount() == 0 {
		if o.Start != "" {
			return fmt.Errorf("%w: %q", ErrUnknownStart, o.Start)
		}
		return nil
	}

	start, err := startIndex(g, o.Start)
	if err != nil {
		return err
	}
	res.Start = start

	res.Traversal, err = bfs.BFS(g, start, bfs.WithContext(o.Ctx))
	return err
}

// startIndex maps a country name to its node; "" selects node 0.
func startIndex(g *core.Graph, name string) (core.NodeIndex, error) {
	if name == "" {
		return 0, nil
	}
	for _, n := range g.Nodes() {
		if n.Record.Name == name {
			return n.Index, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStart, name)
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func logger(o Options) *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}
