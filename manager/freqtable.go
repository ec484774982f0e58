// SPDX-License-Identifier: MIT
// Package: manager
//
// freqtable.go: export of one source attribute as a frequency table.

package manager

import (
	"github.com/katalvlaran/datagrid/freqtable"
)

// ExportFrequencyTableFromOneAttribute exports the named source attribute as
// a frequency table: one row per source part, in part order, holding the
// per-target-value marginal counts of the part.
func (m *Manager) ExportFrequencyTableFromOneAttribute(name string) *freqtable.Table {
	a := m.sourceAttribute("ExportFrequencyTableFromOneAttribute", name)
	width := max(1, m.source.TargetValueNumber())
	rows := make([][]int, a.PartNumber())
	for i := range rows {
		rows[i] = make([]int, width)
	}
	for c := 0; c < m.source.CellNumber(); c++ {
		cell := m.source.Cell(c)
		row := rows[cell.PartAt(a.Index())]
		for t, f := range cell.Frequencies() {
			row[t] += f
		}
	}

	table := freqtable.New(m.source.TargetValueNumber())
	table.InitialValueNumber = a.InitialValueNumber
	table.GranularizedValueNumber = a.GranularizedValueNumber
	table.GarbageModalityNumber = a.GarbageModalityNumber()
	for i, freqs := range rows {
		if err := table.AddRow(a.Part(i).Label(a.Type), freqs); err != nil {
			// rows are sized from the table width and hold cell counts
			panic(err)
		}
	}
	return table
}
