// SPDX-License-Identifier: MIT
// Package: manager
//
// univariate.go: build-from-statistics family.
//
// Univariate partitions arrive in two shapes:
//   • continuous: a frequency table, one row per interval in ascending order;
//     bounds are recovered by matching cumulative row frequencies against the
//     cumulative frequencies of the source intervals;
//   • symbol: a source-part → group index vector, with an optional garbage group.
// Cross-product grids keep at most ⌊log2 N⌋ attributes, N being the number of
// informative statistics whose attribute exists in the source, chosen by
// decreasing level and laid out in source order.

package manager

import (
	"math/bits"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/datagrid/freqtable"
	"github.com/katalvlaran/datagrid/grid"
	"github.com/katalvlaran/datagrid/quantile"
	"github.com/katalvlaran/datagrid/stats"
)

// BuildDataGridFromUnivariateStats builds into the empty target the
// one-attribute grid of the partition stored in s, at the granularity of s.
func (m *Manager) BuildDataGridFromUnivariateStats(target *grid.Grid, s *stats.AttributeStats) {
	const method = "BuildDataGridFromUnivariateStats"
	requireEmpty(method, target)
	src := m.sourceAttribute(method, s.AttributeName)
	target.SetTargetValues(m.source.TargetValues())
	dst := addShell(target, src)
	m.BuildDataGridAttributeFromUnivariateStats(dst, s)
	target.SetGranularity(s.Granularity)
	m.ExportCells(target)
}

// BuildDataGridAttributeFromUnivariateStats builds the parts of dst from the
// partition stored in s, garbage group included.
func (m *Manager) BuildDataGridAttributeFromUnivariateStats(dst *grid.Attribute, s *stats.AttributeStats) {
	if dst.Type != s.Type {
		panicf("BuildDataGridAttributeFromUnivariateStats", ErrIncompatiblePartition,
			"attribute %q is %s, stats %s", dst.Name, dst.Type, s.Type)
	}
	if s.Type == grid.Continuous {
		m.BuildPartsOfContinuousAttributeFromFrequencyTable(dst, s.Intervals, s.AttributeName)
		if s.Intervals != nil {
			dst.GranularizedValueNumber = s.Intervals.GranularizedValueNumber
		}
		return
	}
	m.BuildPartsOfSymbolAttributeFromGroupsIndex(dst, s.Groups, s.GroupNumber, s.GarbagePart(), s.AttributeName)
}

// BuildDataGridFromClassStats builds into the empty target the cross-product
// of the stored univariate partitions of the most relevant attributes. It
// returns ErrTooFewAttributes, leaving target empty, when fewer than two
// attributes qualify.
func (m *Manager) BuildDataGridFromClassStats(target *grid.Grid, cs *stats.ClassStats) error {
	const method = "BuildDataGridFromClassStats"
	requireEmpty(method, target)
	selected, err := m.selectCrossProduct(method, cs)
	if err != nil {
		return err
	}
	target.SetTargetValues(m.source.TargetValues())
	for _, s := range selected {
		m.BuildDataGridAttributeFromUnivariateStats(addShell(target, m.source.SearchAttribute(s.AttributeName)), s)
	}
	target.SetGranularity(m.source.Granularity())
	m.ExportCells(target)
	return nil
}

// BuildDataGridFromUnivariateProduct is BuildDataGridFromClassStats with the
// univariate partitions recomputed at the source granularity by the
// partitioner of cs.
func (m *Manager) BuildDataGridFromUnivariateProduct(target *grid.Grid, cs *stats.ClassStats) error {
	const method = "BuildDataGridFromUnivariateProduct"
	requireEmpty(method, target)
	if cs.Partitioner == nil {
		panicf(method, ErrNoPartitioner, "%d attribute stats", len(cs.Attributes))
	}
	selected, err := m.selectCrossProduct(method, cs)
	if err != nil {
		return err
	}
	target.SetTargetValues(m.source.TargetValues())
	for _, s := range selected {
		src := m.source.SearchAttribute(s.AttributeName)
		m.BuildDataGridAttributeFromGranularizedPartition(src, addShell(target, src), cs)
	}
	target.SetGranularity(m.source.Granularity())
	m.ExportCells(target)
	return nil
}

// selectCrossProduct returns the statistics kept in a cross-product grid, in
// source attribute order.
func (m *Manager) selectCrossProduct(method string, cs *stats.ClassStats) ([]*stats.AttributeStats, error) {
	var candidates []*stats.AttributeStats
	for _, s := range cs.SortedByLevel() {
		if s.Informative() && m.source.SearchAttribute(s.AttributeName) != nil {
			candidates = append(candidates, s)
		}
	}
	n := len(candidates)
	limit := 0
	if n > 0 {
		limit = bits.Len(uint(n)) - 1
	}
	selected := candidates[:min(limit, n)]
	if len(selected) < 2 {
		m.logger.Debug("cross-product grid not built",
			zap.String("op", method),
			zap.Int("informative", n),
			zap.Int("selected", len(selected)))
		return nil, ErrTooFewAttributes
	}
	sort.Slice(selected, func(i, j int) bool {
		return m.source.SearchAttribute(selected[i].AttributeName).Index() <
			m.source.SearchAttribute(selected[j].AttributeName).Index()
	})
	return selected, nil
}

// BuildDataGridAttributeFromGranularizedPartition builds the parts of dst from
// the univariate partition of src recomputed by the partitioner of cs at the
// source granularity (the finest level when the source is not granularized).
func (m *Manager) BuildDataGridAttributeFromGranularizedPartition(src, dst *grid.Attribute, cs *stats.ClassStats) {
	if cs.Partitioner == nil {
		panicf("BuildDataGridAttributeFromGranularizedPartition", ErrNoPartitioner, "attribute %q", src.Name)
	}
	g := m.source.Granularity()
	if g == 0 {
		g = quantile.MaxGranularity(m.source.Frequency())
	}
	table := m.ExportFrequencyTableFromOneAttribute(src.Name)
	if src.Type == grid.Continuous {
		out := cs.Partitioner.Discretize(table, g)
		m.BuildPartsOfContinuousAttributeFromFrequencyTable(dst, out, src.Name)
		dst.GranularizedValueNumber = out.GranularizedValueNumber
		return
	}
	groups, groupNumber, garbage := cs.Partitioner.Group(table, g)
	m.BuildPartsOfSymbolAttributeFromGroupsIndex(dst, groups, groupNumber, garbage, src.Name)
}

// BuildPartsOfContinuousAttributeFromFrequencyTable builds on dst the
// intervals described by the rows of table over the source attribute name.
// Empty rows are ignored. It panics when a row boundary falls inside a
// source interval or the totals differ.
func (m *Manager) BuildPartsOfContinuousAttributeFromFrequencyTable(dst *grid.Attribute, table *freqtable.Table, name string) {
	const method = "BuildPartsOfContinuousAttributeFromFrequencyTable"
	src := m.sourceAttribute(method, name)
	requireNoParts(method, dst)
	if table == nil || table.RowNumber() == 0 {
		panicf(method, ErrTableMismatch, "attribute %q: empty table", name)
	}
	if src.Type != grid.Continuous || dst.Type != grid.Continuous {
		panicf(method, ErrIncompatiblePartition, "attribute %q is not continuous", name)
	}

	var bounds []int
	cum := 0
	for _, f := range table.RowFrequencies() {
		if f > 0 {
			cum += f
			bounds = append(bounds, cum)
		}
	}
	if len(bounds) == 0 {
		bounds = []int{0}
	}

	lower := grid.MinLowerBound
	cum, next := 0, 0
	for i := 0; i < src.PartNumber(); i++ {
		cum += src.Part(i).Frequency
		if next == len(bounds)-1 {
			continue
		}
		if cum > bounds[next] {
			panicf(method, ErrTableMismatch, "attribute %q: row boundary %d inside interval %s",
				name, bounds[next], src.Part(i).Interval)
		}
		if cum == bounds[next] {
			upper := src.Part(i).Interval.Upper
			dst.AddInterval(lower, upper)
			lower = upper
			next++
		}
	}
	if cum != bounds[len(bounds)-1] || next != len(bounds)-1 {
		panicf(method, ErrTableMismatch, "attribute %q: table frequency %d, source %d",
			name, bounds[len(bounds)-1], cum)
	}
	dst.AddInterval(lower, grid.MaxUpperBound)
}

// BuildPartsOfSymbolAttributeFromGroupsIndex builds on dst one value set per
// group, groups[i] being the group of the i-th part of the source attribute
// name. garbageGroup becomes the garbage part unless it is grid.NoGarbagePart.
func (m *Manager) BuildPartsOfSymbolAttributeFromGroupsIndex(dst *grid.Attribute, groups []int, groupNumber, garbageGroup int, name string) {
	const method = "BuildPartsOfSymbolAttributeFromGroupsIndex"
	src := m.sourceAttribute(method, name)
	requireNoParts(method, dst)
	if src.Type != grid.Symbol || dst.Type != grid.Symbol {
		panicf(method, ErrIncompatiblePartition, "attribute %q is not symbol", name)
	}
	if len(groups) != src.PartNumber() {
		panicf(method, ErrGroupIndex, "attribute %q: %d indexes for %d parts", name, len(groups), src.PartNumber())
	}
	if garbageGroup != grid.NoGarbagePart && (garbageGroup < 0 || garbageGroup >= groupNumber) {
		panicf(method, ErrGroupIndex, "attribute %q: garbage group %d of %d", name, garbageGroup, groupNumber)
	}
	values := make([][]grid.Value, groupNumber)
	for i, g := range groups {
		if g < 0 || g >= groupNumber {
			panicf(method, ErrGroupIndex, "attribute %q: part %d group %d of %d", name, i, g, groupNumber)
		}
		values[g] = append(values[g], src.Part(i).Values...)
	}
	for g, vs := range values {
		if len(vs) == 0 {
			panicf(method, ErrGroupIndex, "attribute %q: group %d is empty", name, g)
		}
		dst.AddValueSet(vs...)
	}
	if garbageGroup != grid.NoGarbagePart {
		dst.SetGarbagePart(garbageGroup)
	}
	m.exportSymbolAttributeValueFrequencies(dst)
}
