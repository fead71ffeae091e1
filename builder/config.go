// SPDX-License-Identifier: MIT
// Package: happygraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • dedupe = false (edge multiset: each policy adds its own edge)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// dedupe skips a pair that already has an edge instead of adding a parallel one.
	dedupe bool
}

// newBuilderConfig applies options in order; later options override earlier ones.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
