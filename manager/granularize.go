// SPDX-License-Identifier: MIT
// Package: manager
//
// granularize.go: granularization family.
//
// Builders are created once per source attribute from its part frequencies
// and reused across levels; a builder unit is a source part, so a quantile
// partition maps directly to merged source parts.

package manager

import (
	"github.com/katalvlaran/datagrid/grid"
	"github.com/katalvlaran/datagrid/quantile"
)

// InitializeQuantileBuildersBeforeGranularization returns one builder per
// source attribute keyed by name, and per attribute (source order) the part
// count reachable at the finest granularity.
func (m *Manager) InitializeQuantileBuildersBeforeGranularization() (map[string]quantile.Builder, []int) {
	builders := make(map[string]quantile.Builder, m.source.AttributeNumber())
	maxParts := make([]int, m.source.AttributeNumber())
	for i, a := range m.source.Attributes() {
		var b quantile.Builder
		if a.Type == grid.Continuous {
			b = quantile.NewIntervalBuilder(unitFrequencies(a))
		} else {
			b = quantile.NewGroupBuilder(unitFrequencies(a))
		}
		builders[a.Name] = b
		maxParts[i] = b.MaxPartNumber()
	}
	return builders, maxParts
}

// ExportGranularizedDataGrid exports attributes, parts at granularity g, and
// cells into the empty target, whose granularity becomes g.
func (m *Manager) ExportGranularizedDataGrid(target *grid.Grid, g int, builders map[string]quantile.Builder) {
	m.ExportAttributes(target)
	m.ExportGranularizedParts(target, g, builders)
	m.ExportCells(target)
}

// ExportGranularizedParts builds the parts at granularity g of every target
// attribute and records g on the target.
func (m *Manager) ExportGranularizedParts(target *grid.Grid, g int, builders map[string]quantile.Builder) {
	const method = "ExportGranularizedParts"
	requireNoCells(method, target)
	for _, a := range target.Attributes() {
		src := m.sourceAttribute(method, a.Name)
		b, ok := builders[a.Name]
		if !ok {
			panicf(method, ErrMissingBuilder, "attribute %q", a.Name)
		}
		if a.Type == grid.Continuous {
			m.ExportGranularizedPartsForContinuousAttribute(target, src, a, g, b)
		} else {
			m.ExportGranularizedPartsForSymbolAttribute(target, src, a, g, b)
		}
	}
	target.SetGranularity(g)
}

// ExportGranularizedPartsForContinuousAttribute merges the source intervals
// of src into the quantile intervals of level g and returns the realised
// interval count. GranularizedValueNumber of dst is the theoretical
// partile number.
func (m *Manager) ExportGranularizedPartsForContinuousAttribute(target *grid.Grid, src, dst *grid.Attribute, g int, b quantile.Builder) int {
	const method = "ExportGranularizedPartsForContinuousAttribute"
	p := m.granularPartition(method, target, src, dst, g, b)
	order := make([]int, src.PartNumber())
	for i := range order {
		order[i] = i
	}
	buildRuns(src, dst, order, runEnds(p))
	dst.GranularizedValueNumber = quantile.PartileNumber(g, b.TotalFrequency())
	m.logShortfall(method, dst, dst.GranularizedValueNumber, dst.PartNumber())
	return dst.PartNumber()
}

// ExportGranularizedPartsForSymbolAttribute merges the source parts of src
// into the quantile groups of level g and returns the realised group count,
// also recorded as GranularizedValueNumber of dst. The catch-all group value
// count is recorded as CatchAllValueNumber.
func (m *Manager) ExportGranularizedPartsForSymbolAttribute(target *grid.Grid, src, dst *grid.Attribute, g int, b quantile.Builder) int {
	const method = "ExportGranularizedPartsForSymbolAttribute"
	p := m.granularPartition(method, target, src, dst, g, b)
	values := make([][]grid.Value, p.Count)
	for u, group := range p.Groups {
		values[group] = append(values[group], src.Part(u).Values...)
	}
	for _, vs := range values {
		dst.AddValueSet(vs...)
	}
	dst.CatchAllValueNumber = 0
	if p.CatchAll != quantile.NoCatchAll {
		dst.CatchAllValueNumber = dst.Part(p.CatchAll).TrueValueNumber()
	}
	dst.GranularizedValueNumber = p.Count
	m.exportSymbolAttributeValueFrequencies(dst)
	m.logShortfall(method, dst, quantile.PartileNumber(g, b.TotalFrequency()), p.Count)
	return p.Count
}

func (m *Manager) granularPartition(method string, target *grid.Grid, src, dst *grid.Attribute, g int, b quantile.Builder) quantile.Partition {
	requireNoCells(method, target)
	requireNoParts(method, dst)
	if b == nil {
		panicf(method, ErrMissingBuilder, "attribute %q", src.Name)
	}
	if b.UnitNumber() != src.PartNumber() {
		panicf(method, ErrBuilderMismatch, "attribute %q: %d units for %d parts", src.Name, b.UnitNumber(), src.PartNumber())
	}
	if src.PartNumber() == 0 {
		panicf(method, ErrMissingParts, "source attribute %q", src.Name)
	}
	return b.Quantiles(g)
}

// runEnds returns the last unit of every output part but the final one, for
// partitions made of consecutive runs.
func runEnds(p quantile.Partition) []int {
	var ends []int
	for u := 0; u+1 < len(p.Groups); u++ {
		if p.Groups[u] != p.Groups[u+1] {
			ends = append(ends, u)
		}
	}
	return ends
}
