package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for dataset loading. Every load failure is a *FieldError
// (or a plain I/O error) wrapping one of these.
var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrMissingField indicates an absent or empty cell.
	ErrMissingField = errors.New("dataset: missing field")

	// ErrMalformedNumber indicates a numeric cell that does not parse as a finite float.
	ErrMalformedNumber = errors.New("dataset: malformed number")

	// ErrDuplicateName indicates two rows with the same country name.
	ErrDuplicateName = errors.New("dataset: duplicate country name")

	// ErrEmptyInput indicates the input had no header row.
	ErrEmptyInput = errors.New("dataset: empty input")
)

// FieldError locates a load failure.
type FieldError struct {
	// Line is the 1-based CSV line (header is line 1).
	Line int

	// Field is the logical field name, e.g. "HappinessScore".
	Field string

	// Value is the offending raw cell, if any.
	Value string

	Err error
}

func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("dataset: line %d: field %s=%q: %v", e.Line, e.Field, e.Value, e.Err)
	}

	return fmt.Sprintf("dataset: line %d: field %s: %v", e.Line, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
