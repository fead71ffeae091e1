// SPDX-License-Identifier: MIT
// Package: happygraph/builder
//
// impl_similarity.go - happiness-score similarity policy.
//
// Contract:
//   • threshold must be finite and > 0 (else ErrOptionViolation).
//   • Every unordered pair {i,j}, i<j, over ALL nodes with
//     |score(i) − score(j)| < threshold gets one KindSimilarity edge.
//   • The comparison is strict: a difference equal to threshold adds nothing.
//
// Complexity:
//   • Time: O(V²). Space: O(V) for the score snapshot.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/happygraph/core"
)

const methodScoreSimilarity = "ScoreSimilarity"

// DefaultSimilarityThreshold is the score gap below which two countries are
// considered similar.
const DefaultSimilarityThreshold = 1.0

// ScoreSimilarity returns a Constructor connecting every pair of nodes whose
// happiness scores differ by strictly less than threshold.
func ScoreSimilarity(threshold float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold <= 0 {
			return fmt.Errorf("%s: threshold=%v: %w", methodScoreSimilarity, threshold, ErrOptionViolation)
		}

		nodes := g.Nodes()
		for i := 0; i < len(nodes); i++ {
			si := nodes[i].Record.HappinessScore
			for j := i + 1; j < len(nodes); j++ {
				if math.Abs(si-nodes[j].Record.HappinessScore) >= threshold {
					continue
				}
				if err := addPolicyEdge(g, cfg, methodScoreSimilarity, nodes[i].Index, nodes[j].Index, core.KindSimilarity); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
