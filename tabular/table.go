package tabular

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/on-the-ground/memo_ive_go/internal/keychain"
	"github.com/rickb777/date/v2"
)

// ErrShape is returned when cells do not match the labels.
var ErrShape = errors.New("tabular: cells do not match labels")

// Labeled is a table exposing its row and column labels.
type Labeled interface {
	RowLabels() []any
	ColumnLabels() []any
}

// Frame is a two-dimensional table with labeled rows and columns.
// Labels are fixed at construction; cells may be overwritten in place.
type Frame struct {
	index   []any
	columns []any
	cells   [][]any
}

// NewFrame builds a Frame from row-major cells.
func NewFrame(index, columns []any, cells [][]any) (*Frame, error) {
	if len(cells) != len(index) {
		return nil, fmt.Errorf("%w: %d rows for %d row labels", ErrShape, len(cells), len(index))
	}
	rows := make([][]any, len(cells))
	for i, row := range cells {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells for %d columns", ErrShape, i, len(row), len(columns))
		}
		rows[i] = slices.Clone(row)
	}
	return &Frame{
		index:   slices.Clone(index),
		columns: slices.Clone(columns),
		cells:   rows,
	}, nil
}

func (f *Frame) RowLabels() []any {
	if f == nil {
		return nil
	}
	return slices.Clone(f.index)
}

func (f *Frame) ColumnLabels() []any {
	if f == nil {
		return nil
	}
	return slices.Clone(f.columns)
}

// At returns the cell at row i, column j.
func (f *Frame) At(i, j int) any {
	return f.cells[i][j]
}

// Set overwrites the cell at row i, column j.
func (f *Frame) Set(i, j int, v any) {
	f.cells[i][j] = v
}

// Column returns a copy of the column labeled label as a Series.
// Labels that cannot be compared with == are never found.
func (f *Frame) Column(label any) (*Series, bool) {
	if f == nil || !keychain.Comparable(label) {
		return nil, false
	}
	j := slices.Index(f.columns, label)
	if j < 0 {
		return nil, false
	}
	values := make([]any, len(f.cells))
	for i, row := range f.cells {
		values[i] = row[j]
	}
	return &Series{name: label, index: slices.Clone(f.index), values: values}, true
}

// Series is a single labeled column.
type Series struct {
	name   any
	index  []any
	values []any
}

// NewSeries builds a Series named name.
func NewSeries(name any, index, values []any) (*Series, error) {
	if len(values) != len(index) {
		return nil, fmt.Errorf("%w: %d values for %d row labels", ErrShape, len(values), len(index))
	}
	return &Series{
		name:   name,
		index:  slices.Clone(index),
		values: slices.Clone(values),
	}, nil
}

func (s *Series) Name() any {
	if s == nil {
		return nil
	}
	return s.name
}

func (s *Series) RowLabels() []any {
	if s == nil {
		return nil
	}
	return slices.Clone(s.index)
}

// ColumnLabels returns the series' own name as its only column label.
func (s *Series) ColumnLabels() []any {
	if s == nil {
		return nil
	}
	return []any{s.name}
}

func (s *Series) At(i int) any {
	return s.values[i]
}

func (s *Series) Set(i int, v any) {
	s.values[i] = v
}

func (s *Series) Len() int {
	return len(s.values)
}

// DateIndex returns days consecutive calendar dates starting at start's date,
// for use as row labels.
func DateIndex(start time.Time, days int) []any {
	labels := make([]any, days)
	for i := range labels {
		labels[i] = date.New(start.Year(), start.Month(), start.Day()+i)
	}
	return labels
}

var (
	_ Labeled = (*Frame)(nil)
	_ Labeled = (*Series)(nil)
)
