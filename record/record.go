// SPDX-License-Identifier: MIT
// Package record defines the Country value type and the Store that maps
// unique country names to their records.
//
// A Store is produced once by a loader (see package dataset) and is read-only
// afterwards; the graph builder copies every Country into its own arena, so
// nothing downstream aliases back into the Store.
package record

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors for record validation.
var (
	// ErrEmptyName indicates a Country with an empty Name.
	ErrEmptyName = errors.New("record: country name is empty")

	// ErrKeyMismatch indicates a Store key that differs from the record's Name.
	ErrKeyMismatch = errors.New("record: store key does not match country name")

	// ErrNotFinite indicates a NaN or ±Inf numeric attribute.
	ErrNotFinite = errors.New("record: numeric attribute is not finite")
)

// Country is one row of the happiness dataset.
type Country struct {
	// Name is the unique key of the record.
	Name string

	// Region groups countries many-to-one.
	Region string

	HappinessScore float64
	HappinessRank  float64
	GDP            float64
	Health         float64
	Family         float64
	Corruption     float64
}

// Validate checks that c has a name and only finite numeric attributes.
// The returned error names the offending field.
func (c Country) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	for _, f := range c.numericFields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%q field %s=%v: %w", c.Name, f.name, f.value, ErrNotFinite)
		}
	}

	return nil
}

type numericField struct {
	name  string
	value float64
}

// numericFields lists the six numeric attributes in dataset column order.
func (c Country) numericFields() [6]numericField {
	return [6]numericField{
		{"HappinessRank", c.HappinessRank},
		{"HappinessScore", c.HappinessScore},
		{"GDP", c.GDP},
		{"Health", c.Health},
		{"Family", c.Family},
		{"Corruption", c.Corruption},
	}
}

// Store maps a unique country name to its record.
// Iteration order is irrelevant to every consumer; use Names for a stable order.
type Store map[string]Country

// Add inserts c under its own name, replacing any previous entry.
func (s Store) Add(c Country) { s[c.Name] = c }

// Names returns all keys sorted lexicographically ascending.
// Complexity: O(n log n).
func (s Store) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Sorted returns the records ordered by Name ascending.
func (s Store) Sorted() []Country {
	names := s.Names()
	out := make([]Country, len(names))
	for i, name := range names {
		out[i] = s[name]
	}

	return out
}

// Validate checks every record and the key == Name invariant.
// Records are checked in name order so the first reported error is stable.
func (s Store) Validate() error {
	for _, name := range s.Names() {
		c := s[name]
		if c.Name != name {
			return fmt.Errorf("key %q holds %q: %w", name, c.Name, ErrKeyMismatch)
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Regions returns the distinct region names sorted ascending.
func (s Store) Regions() []string {
	seen := make(map[string]struct{})
	for _, c := range s {
		seen[c.Region] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Strings(out)

	return out
}
