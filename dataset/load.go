// Package dataset decodes the happiness CSV into a record.Store.
//
// The first row is a header; columns are located by name (see Columns), so
// extra columns and any column order are accepted. A load is all-or-nothing:
// the first malformed row aborts it with a *FieldError naming the line and
// field.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/happygraph/record"
)

// Option configures a load.
type Option func(*loader)

type loader struct {
	cols Columns
}

// WithColumns overrides the header names; empty entries keep their defaults.
func WithColumns(c Columns) Option {
	return func(l *loader) { l.cols = c.merged() }
}

// Load opens path and decodes it with Read.
func Load(path string, opts ...Option) (record.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read decodes CSV from r.
//
// Errors:
//   - ErrEmptyInput when there is no header.
//   - *FieldError wrapping ErrMissingColumn, ErrMissingField,
//     ErrMalformedNumber or ErrDuplicateName.
//   - Wrapped csv parse errors.
func Read(r io.Reader, opts ...Option) (record.Store, error) {
	l := loader{cols: DefaultColumns()}
	for _, opt := range opts {
		opt(&l)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: header: %w", err)
	}
	idx, err := l.resolve(header)
	if err != nil {
		return nil, err
	}

	store := record.Store{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		line, _ := cr.FieldPos(0)
		c, err := l.decode(row, idx, line)
		if err != nil {
			return nil, err
		}
		if _, dup := store[c.Name]; dup {
			return nil, &FieldError{Line: line, Field: "Name", Value: c.Name, Err: ErrDuplicateName}
		}
		store.Add(c)
	}

	return store, nil
}

// resolve maps each field to its header position.
func (l loader) resolve(header []string) ([8]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, seen := pos[h]; !seen {
			pos[h] = i
		}
	}

	var idx [8]int
	for i, f := range l.cols.fields() {
		p, ok := pos[f.header]
		if !ok {
			return idx, &FieldError{Line: 1, Field: f.logical, Value: f.header, Err: ErrMissingColumn}
		}
		idx[i] = p
	}

	return idx, nil
}

// decode builds one Country from a row.
func (l loader) decode(row []string, idx [8]int, line int) (record.Country, error) {
	var cells [8]string
	for i, f := range l.cols.fields() {
		if idx[i] >= len(row) {
			return record.Country{}, &FieldError{Line: line, Field: f.logical, Err: ErrMissingField}
		}
		cells[i] = strings.TrimSpace(row[idx[i]])
		if cells[i] == "" {
			return record.Country{}, &FieldError{Line: line, Field: f.logical, Err: ErrMissingField}
		}
	}

	var nums [6]float64
	for i := 0; i < 6; i++ {
		f := l.cols.fields()[i+2]
		v, err := strconv.ParseFloat(cells[i+2], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return record.Country{}, &FieldError{Line: line, Field: f.logical, Value: cells[i+2], Err: ErrMalformedNumber}
		}
		nums[i] = v
	}

	return record.Country{
		Name:           cells[0],
		Region:         cells[1],
		HappinessRank:  nums[0],
		HappinessScore: nums[1],
		GDP:            nums[2],
		Health:         nums[3],
		Family:         nums[4],
		Corruption:     nums[5],
	}, nil
}
