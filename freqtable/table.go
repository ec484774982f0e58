// SPDX-License-Identifier: MIT
// Package: freqtable
//
// table.go: Table and Row.
//
// Contract:
//   • Every row frequency vector has Width() entries: one per target value,
//     or a single count for unsupervised tables.
//   • Row order is meaningful: for continuous attributes rows follow the
//     increasing interval order.

package freqtable

import (
	"fmt"
	"strings"
)

// Row is one part of a univariate partition.
type Row struct {
	// Label describes the part ("]a;b]" or "{x, y}"); informative only.
	Label string
	// Frequencies holds one count per target value.
	Frequencies []int
}

// Frequency returns the total count of the row.
func (r Row) Frequency() int {
	total := 0
	for _, f := range r.Frequencies {
		total += f
	}
	return total
}

// Table is a univariate frequency table.
type Table struct {
	Rows []Row

	// InitialValueNumber is the value count of the attribute the table comes from.
	InitialValueNumber int
	// GranularizedValueNumber is the value count after granularization.
	GranularizedValueNumber int
	// GarbageModalityNumber is the value count of the garbage row, 0 if none.
	GarbageModalityNumber int

	width int
}

// New returns an empty table for targetValueNumber target values
// (0 for an unsupervised table, which then has width 1).
func New(targetValueNumber int) *Table {
	width := targetValueNumber
	if width <= 0 {
		width = 1
	}
	return &Table{width: width}
}

// Width returns the length of every frequency vector.
func (t *Table) Width() int { return t.width }

// RowNumber returns the number of rows.
func (t *Table) RowNumber() int { return len(t.Rows) }

// AddRow appends a row; the frequency vector is copied.
func (t *Table) AddRow(label string, freqs []int) error {
	if len(freqs) != t.width {
		return fmt.Errorf("AddRow(%q): %d counts for width %d: %w", label, len(freqs), t.width, ErrRowWidth)
	}
	for _, f := range freqs {
		if f < 0 {
			return fmt.Errorf("AddRow(%q): count %d: %w", label, f, ErrNegativeFrequency)
		}
	}
	t.Rows = append(t.Rows, Row{Label: label, Frequencies: append([]int(nil), freqs...)})
	return nil
}

// TotalFrequency sums every row.
func (t *Table) TotalFrequency() int {
	total := 0
	for _, r := range t.Rows {
		total += r.Frequency()
	}
	return total
}

// RowFrequencies returns the total count of every row, in row order.
func (t *Table) RowFrequencies() []int {
	out := make([]int, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Frequency()
	}
	return out
}

// Check verifies the width and sign of every row.
func (t *Table) Check() error {
	for i, r := range t.Rows {
		if len(r.Frequencies) != t.width {
			return fmt.Errorf("row %d: %d counts for width %d: %w", i, len(r.Frequencies), t.width, ErrRowWidth)
		}
		for _, f := range r.Frequencies {
			if f < 0 {
				return fmt.Errorf("row %d: count %d: %w", i, f, ErrNegativeFrequency)
			}
		}
	}
	return nil
}

// Merge returns the coarser table where row i is added into output row
// groups[i]. groupNumber output rows are created; labels of merged rows are
// joined with "+".
func (t *Table) Merge(groups []int, groupNumber int) (*Table, error) {
	if len(groups) != len(t.Rows) {
		return nil, fmt.Errorf("Merge: %d indexes for %d rows: %w", len(groups), len(t.Rows), ErrGroupIndex)
	}
	out := &Table{
		Rows:                    make([]Row, groupNumber),
		InitialValueNumber:      t.InitialValueNumber,
		GranularizedValueNumber: t.GranularizedValueNumber,
		width:                   t.width,
	}
	labels := make([][]string, groupNumber)
	for g := range out.Rows {
		out.Rows[g].Frequencies = make([]int, t.width)
	}
	for i, g := range groups {
		if g < 0 || g >= groupNumber {
			return nil, fmt.Errorf("Merge: row %d group %d of %d: %w", i, g, groupNumber, ErrGroupIndex)
		}
		for k, f := range t.Rows[i].Frequencies {
			out.Rows[g].Frequencies[k] += f
		}
		labels[g] = append(labels[g], t.Rows[i].Label)
	}
	for g := range out.Rows {
		out.Rows[g].Label = strings.Join(labels[g], "+")
	}
	return out, nil
}
