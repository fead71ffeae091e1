// SPDX-License-Identifier: MIT
// Package: happygraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the method name.

package builder

import "errors"

// ErrInvalidRecords indicates the input Store failed record.Store.Validate.
var ErrInvalidRecords = errors.New("builder: invalid records")

// ErrOptionViolation indicates a constructor parameter outside its domain
// (e.g., a non-positive or non-finite similarity threshold).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates a constructor could not complete, for example a
// nil constructor or a core.AddEdge failure that the policy cannot absorb.
var ErrConstructFailed = errors.New("builder: construction failed")
