// SPDX-License-Identifier: MIT
// Package: happygraph/builder
//
// options.go - functional options for the builder package.

package builder

// BuilderOption customizes construction by mutating a builderConfig before
// any node is inserted.
type BuilderOption func(*builderConfig)

// WithDedupe switches from the edge-multiset convention to an edge set: the
// graph is created without multi-edge support and a policy that meets an
// already-connected pair leaves it alone. Degrees then equal distinct
// neighbor counts.
func WithDedupe() BuilderOption {
	return func(c *builderConfig) { c.dedupe = true }
}
