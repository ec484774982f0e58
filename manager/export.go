// SPDX-License-Identifier: MIT
// Package: manager
//
// export.go: copy and export family.
//
// The export steps compose: ExportAttributes (shells and target values),
// then ExportParts (or a random / granularized / statistics-driven variant),
// then ExportCells (re-aggregation of the source cells). Each step checks it
// does not revisit what a previous step populated.

package manager

import (
	"slices"

	"github.com/katalvlaran/datagrid/grid"
)

// CopyDataGrid copies initial (any grid, not necessarily the source) into the
// empty target: target values, granularity, attributes, parts and cells.
func (m *Manager) CopyDataGrid(initial, target *grid.Grid) {
	m.copyGrid("CopyDataGrid", initial, target, false)
}

// CopyInformativeDataGrid is CopyDataGrid without the attributes of initial
// that have a single part. Cells are projected on the kept attributes.
func (m *Manager) CopyInformativeDataGrid(initial, target *grid.Grid) {
	m.copyGrid("CopyInformativeDataGrid", initial, target, true)
}

func (m *Manager) copyGrid(method string, initial, target *grid.Grid, informativeOnly bool) {
	requireEmpty(method, target)
	target.SetTargetValues(initial.TargetValues())
	target.SetGranularity(initial.Granularity())

	var kept []int
	for i, a := range initial.Attributes() {
		if informativeOnly && !a.IsInformative() {
			continue
		}
		kept = append(kept, i)
		out := addShell(target, a)
		out.CatchAllValueNumber = a.CatchAllValueNumber
		copyParts(a, out)
		out.SetGarbagePart(a.GarbagePart())
	}

	parts := make([]int, len(kept))
	for c := 0; c < initial.CellNumber(); c++ {
		cell := initial.Cell(c)
		for k, a := range kept {
			parts[k] = cell.PartAt(a)
		}
		target.Cell(target.LookupOrAddCell(parts)).AddFrequenciesFrom(cell)
	}
	target.UpdateStatistics()
}

// copyParts appends the parts of src to dst, frequencies reset.
func copyParts(src, dst *grid.Attribute) {
	for i := 0; i < src.PartNumber(); i++ {
		p := *src.Part(i)
		p.Frequency = 0
		dst.AddPart(p)
	}
}

// ExportDataGrid exports the whole source grid into the empty target.
func (m *Manager) ExportDataGrid(target *grid.Grid) {
	m.ExportAttributes(target)
	m.ExportParts(target)
	m.ExportCells(target)
}

// ExportTerminalDataGrid exports every source attribute reduced to a single
// part, hence a single cell holding the whole frequency.
func (m *Manager) ExportTerminalDataGrid(target *grid.Grid) {
	m.ExportAttributes(target)
	for _, a := range target.Attributes() {
		src := m.source.SearchAttribute(a.Name)
		if a.Type == grid.Continuous {
			a.AddInterval(grid.MinLowerBound, grid.MaxUpperBound)
			continue
		}
		var values []grid.Value
		for i := 0; i < src.PartNumber(); i++ {
			values = append(values, src.Part(i).Values...)
		}
		a.AddValueSet(values...)
		m.exportSymbolAttributeValueFrequencies(a)
	}
	m.ExportCells(target)
}

// ExportAttributes exports the target values, the granularity and the shell
// of every source attribute into the empty target.
func (m *Manager) ExportAttributes(target *grid.Grid) {
	m.exportShells("ExportAttributes", target, func(*grid.Attribute) bool { return true })
}

// ExportOneAttribute exports the target values, the granularity and the
// shell of the named source attribute into the empty target.
func (m *Manager) ExportOneAttribute(target *grid.Grid, name string) {
	m.sourceAttribute("ExportOneAttribute", name)
	m.exportShells("ExportOneAttribute", target, func(a *grid.Attribute) bool { return a.Name == name })
}

// ExportInformativeAttributes is ExportAttributes restricted to the source
// attributes with more than one part.
func (m *Manager) ExportInformativeAttributes(target *grid.Grid) {
	m.exportShells("ExportInformativeAttributes", target, (*grid.Attribute).IsInformative)
}

func (m *Manager) exportShells(method string, target *grid.Grid, keep func(*grid.Attribute) bool) {
	requireEmpty(method, target)
	target.SetTargetValues(m.source.TargetValues())
	target.SetGranularity(m.source.Granularity())
	for _, a := range m.source.Attributes() {
		if keep(a) {
			addShell(target, a)
		}
	}
}

// ExportParts copies the source parts of every target attribute. Target
// attributes must exist in the source and have no part yet.
func (m *Manager) ExportParts(target *grid.Grid) {
	requireNoCells("ExportParts", target)
	for _, a := range target.Attributes() {
		m.ExportPartsForAttribute(target, a.Name)
	}
}

// ExportPartsForAttribute copies the source parts of one target attribute,
// with the garbage designation and the value frequencies.
func (m *Manager) ExportPartsForAttribute(target *grid.Grid, name string) {
	const method = "ExportPartsForAttribute"
	requireNoCells(method, target)
	dst := target.SearchAttribute(name)
	if dst == nil {
		panicf(method, ErrUnknownAttribute, "%q not in target", name)
	}
	src := m.sourceAttribute(method, name)
	requireNoParts(method, dst)
	copyParts(src, dst)
	dst.CatchAllValueNumber = src.CatchAllValueNumber
	dst.SetGarbagePart(src.GarbagePart())
}

// ExportCells fills the target cells by aggregating every source cell into
// the target parts holding its source parts. Source attributes absent from
// the target are summed out. Total and per-attribute frequencies are conserved.
func (m *Manager) ExportCells(target *grid.Grid) {
	const method = "ExportCells"
	requireNoCells(method, target)
	if !slices.Equal(target.TargetValues(), m.source.TargetValues()) {
		panicf(method, ErrTargetValueMismatch, "target values %v, source %v", target.TargetValues(), m.source.TargetValues())
	}
	for _, a := range target.Attributes() {
		if a.PartNumber() == 0 {
			panicf(method, ErrMissingParts, "attribute %q", a.Name)
		}
	}
	srcIndex, mappings, err := m.targetMappings(target)
	if err != nil {
		panicf(method, ErrIncompatiblePartition, "%v", err)
	}

	parts := make([]int, target.AttributeNumber())
	for c := 0; c < m.source.CellNumber(); c++ {
		cell := m.source.Cell(c)
		for i := range parts {
			parts[i] = mappings[i][cell.PartAt(srcIndex[i])]
		}
		target.Cell(target.LookupOrAddCell(parts)).AddFrequenciesFrom(cell)
	}
	target.UpdateStatistics()
}

// exportSymbolAttributeValueFrequencies sets every value of a fully specified
// symbol target attribute to its source frequency. StarValue receives every
// instance not recorded on an explicit value.
func (m *Manager) exportSymbolAttributeValueFrequencies(dst *grid.Attribute) {
	src := m.sourceAttribute("exportSymbolAttributeValueFrequencies", dst.Name)
	freqs := make(map[string]int, src.StoredValueNumber())
	total := 0
	for i := 0; i < src.PartNumber(); i++ {
		p := src.Part(i)
		total += p.Frequency
		for _, v := range p.Values {
			if v.Symbol != grid.StarValue {
				freqs[v.Symbol] += v.Frequency
			}
		}
	}
	recorded := 0
	star := -1
	for t := 0; t < dst.PartNumber(); t++ {
		values := dst.Part(t).Values
		for k := range values {
			if values[k].Symbol == grid.StarValue {
				star = t
				continue
			}
			values[k].Frequency = freqs[values[k].Symbol]
			recorded += values[k].Frequency
		}
	}
	if star < 0 {
		return
	}
	values := dst.Part(star).Values
	for k := range values {
		if values[k].Symbol == grid.StarValue {
			values[k].Frequency = max(0, total-recorded)
		}
	}
}
