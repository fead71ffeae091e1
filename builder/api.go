// SPDX-License-Identifier: MIT
// Package: happygraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(store, bopts, cons...). Creates g, inserts
//     one node per record, resolves cfg, runs cons in order.
//   - Determinism: nodes are inserted in ascending name order, so the same
//     store always yields the same NodeIndex assignment and edge order.
//   - Constructors never mutate the store.

package builder

import (
	"fmt"

	"github.com/katalvlaran/happygraph/core"
	"github.com/katalvlaran/happygraph/record"
)

// Constructor adds edges to a graph whose nodes are already inserted.
// Constructors MUST validate parameters early and must not panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph validates store, creates a graph holding one node per record
// (ascending name order), and applies cons in order.
//
// Errors:
//   - ErrInvalidRecords wrapping the record validation error.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildGraph: %w".
//
// Complexity: O(n log n) for ordering plus the cost of each constructor.
func BuildGraph(store record.Store, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if err := store.Validate(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrInvalidRecords, err)
	}

	cfg := newBuilderConfig(bopts...)
	gopts := []core.GraphOption{core.WithCapacity(len(store))}
	if !cfg.dedupe {
		gopts = append(gopts, core.WithMultiEdges())
	}
	g := core.NewGraph(gopts...)

	for _, c := range store.Sorted() {
		g.AddNode(c)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build is BuildGraph with the standard policy pair: RegionCliques followed
// by ScoreSimilarity(DefaultSimilarityThreshold).
func Build(store record.Store, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(store, opts, RegionCliques(), ScoreSimilarity(DefaultSimilarityThreshold))
}

// addPolicyEdge adds u-v honoring the dedupe setting.
// In dedupe mode an existing pair is skipped silently.
func addPolicyEdge(g *core.Graph, cfg builderConfig, method string, u, v core.NodeIndex, kind core.EdgeKind) error {
	if cfg.dedupe && g.HasEdge(u, v) {
		return nil
	}
	if _, err := g.AddEdge(u, v, kind); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
