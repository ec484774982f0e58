// SPDX-License-Identifier: MIT
// Package: manager
//
// random.go: random generation family.
//
// Split-point rule: a random partition of S ordered units into k parts is a
// uniformly drawn (k-1)-subset of the S-1 inter-unit boundaries, taken in
// ascending order (InitRandomIndexVector). Every partition with k non-empty
// runs of units is thus equally likely.
//   • continuous: the units are the source intervals, i.e. value ranks;
//   • symbol: the units are the source parts in a random order, so every
//     target part is a random set of source values.
// Refinements (AddRandom*) draw only among the boundaries that the mandatory
// partition leaves open, so mandatory parts are never merged.

package manager

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/datagrid/grid"
)

// InitRandomIndexVector returns count distinct integers of [0, maxExclusive)
// in ascending order. It panics unless 0 <= count <= maxExclusive.
func (m *Manager) InitRandomIndexVector(count, maxExclusive int) []int {
	if count < 0 || count > maxExclusive {
		panicf("InitRandomIndexVector", ErrInvalidArgument, "count %d, max %d", count, maxExclusive)
	}
	idxs := make([]int, count)
	if count == 0 {
		return idxs
	}
	sampleuv.WithoutReplacement(idxs, maxExclusive, m.src)
	sort.Ints(idxs)
	return idxs
}

// ExportRandomAttributes exports the target values, the granularity and the
// shells of k source attributes drawn without replacement, in source order.
func (m *Manager) ExportRandomAttributes(target *grid.Grid, k int) {
	const method = "ExportRandomAttributes"
	if k < 0 || k > m.source.AttributeNumber() {
		panicf(method, ErrInvalidArgument, "%d attributes of %d", k, m.source.AttributeNumber())
	}
	chosen := make(map[int]bool, k)
	for _, i := range m.InitRandomIndexVector(k, m.source.AttributeNumber()) {
		chosen[i] = true
	}
	m.exportShells(method, target, func(a *grid.Attribute) bool { return chosen[a.Index()] })
}

// ExportRandomParts builds a random partition of at most meanPartNumber parts
// for every target attribute.
func (m *Manager) ExportRandomParts(target *grid.Grid, meanPartNumber int) {
	requireNoCells("ExportRandomParts", target)
	for _, a := range target.Attributes() {
		m.ExportRandomAttributeParts(target, m.sourceAttribute("ExportRandomParts", a.Name), a, meanPartNumber)
	}
}

// ExportRandomAttributeParts builds on dst a random coarsening of src with
// min(partNumber, src.PartNumber()) parts and returns that count.
func (m *Manager) ExportRandomAttributeParts(target *grid.Grid, src, dst *grid.Attribute, partNumber int) int {
	const method = "ExportRandomAttributeParts"
	requireNoCells(method, target)
	requireNoParts(method, dst)
	if partNumber < 1 {
		panicf(method, ErrInvalidArgument, "part number %d", partNumber)
	}
	units := src.PartNumber()
	if units == 0 {
		panicf(method, ErrMissingParts, "source attribute %q", src.Name)
	}
	k := min(partNumber, units)

	order := make([]int, units)
	for i := range order {
		order[i] = i
	}
	if src.Type == grid.Symbol {
		m.rng.Shuffle(units, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	cuts := m.InitRandomIndexVector(k-1, units-1)
	buildRuns(src, dst, order, cuts)
	if dst.Type == grid.Symbol {
		m.exportSymbolAttributeValueFrequencies(dst)
	}
	m.logShortfall(method, dst, partNumber, dst.PartNumber())
	return dst.PartNumber()
}

// AddRandomAttributes exports the shells of every attribute of mandatory plus
// source attributes drawn at random, up to requested attributes in total,
// in source order.
func (m *Manager) AddRandomAttributes(target, mandatory *grid.Grid, requested int) {
	const method = "AddRandomAttributes"
	chosen := make(map[int]bool)
	var optional []int
	for _, a := range mandatory.Attributes() {
		chosen[m.sourceAttribute(method, a.Name).Index()] = true
	}
	for _, a := range m.source.Attributes() {
		if !chosen[a.Index()] {
			optional = append(optional, a.Index())
		}
	}
	extra := min(max(0, requested-len(chosen)), len(optional))
	for _, i := range m.InitRandomIndexVector(extra, len(optional)) {
		chosen[optional[i]] = true
	}
	m.exportShells(method, target, func(a *grid.Attribute) bool { return chosen[a.Index()] })
}

// AddRandomParts refines, for every target attribute, the partition of the
// mandatory attribute of the same name (a single part when mandatory has no
// such attribute). The number of parts to add is drawn uniformly between
// ⌈minPercentageAdded·missing⌉ and missing, where missing is the requested
// part count of the attribute type minus the mandatory part count.
func (m *Manager) AddRandomParts(target, mandatory *grid.Grid, requestedContinuous, requestedSymbol int, minPercentageAdded float64) {
	const method = "AddRandomParts"
	requireNoCells(method, target)
	if minPercentageAdded < 0 || minPercentageAdded > 1 {
		panicf(method, ErrInvalidArgument, "min percentage %v not in [0,1]", minPercentageAdded)
	}
	for _, a := range target.Attributes() {
		src := m.sourceAttribute(method, a.Name)
		mand := mandatory.SearchAttribute(a.Name)
		base := 1
		if mand != nil {
			base = mand.PartNumber()
		}
		requested := requestedContinuous
		if a.Type == grid.Symbol {
			requested = requestedSymbol
		}
		missing := max(0, requested-base)
		lo := int(math.Ceil(minPercentageAdded * float64(missing)))
		added := lo + m.rng.IntN(missing-lo+1)
		m.AddRandomAttributeParts(target, src, mand, a, base+added)
	}
}

// AddRandomAttributeParts builds on dst a random refinement of mand (nil
// stands for the single-part partition) towards requested parts and returns
// the realised count, which falls short when mand leaves too few boundaries
// open. Every mandatory part is a union of dst parts.
func (m *Manager) AddRandomAttributeParts(target *grid.Grid, src, mand, dst *grid.Attribute, requested int) int {
	const method = "AddRandomAttributeParts"
	requireNoCells(method, target)
	requireNoParts(method, dst)
	if src.PartNumber() == 0 {
		panicf(method, ErrMissingParts, "source attribute %q", src.Name)
	}

	groups := make([]int, src.PartNumber())
	if mand != nil {
		mp, err := mapParts(src, mand)
		if err != nil {
			panicf(method, ErrIncompatiblePartition, "mandatory attribute %q: %v", mand.Name, err)
		}
		groups = mp
	}

	order := m.sortAttributeParts(src, groups)
	var fixed, open []int
	for j := 0; j+1 < len(order); j++ {
		if groups[order[j]] != groups[order[j+1]] {
			fixed = append(fixed, j)
		} else {
			open = append(open, j)
		}
	}
	extra := min(max(0, requested-len(fixed)-1), len(open))
	cuts := fixed
	for _, i := range m.InitRandomIndexVector(extra, len(open)) {
		cuts = append(cuts, open[i])
	}
	sort.Ints(cuts)

	buildRuns(src, dst, order, cuts)
	if dst.Type == grid.Symbol {
		m.exportSymbolAttributeValueFrequencies(dst)
	}
	m.logShortfall(method, dst, requested, dst.PartNumber())
	return dst.PartNumber()
}

// sortAttributeParts orders the parts of src by group. Continuous parts keep
// their source order (groups are runs of intervals); symbol parts are sorted
// by group, in random order inside each group.
func (m *Manager) sortAttributeParts(src *grid.Attribute, groups []int) []int {
	order := make([]int, src.PartNumber())
	for i := range order {
		order[i] = i
	}
	if src.Type == grid.Continuous {
		return order
	}
	m.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	sort.SliceStable(order, func(i, j int) bool { return groups[order[i]] < groups[order[j]] })
	return order
}

// buildRuns creates one dst part per run of units in order, a new run
// starting after every position listed in cuts (ascending).
func buildRuns(src, dst *grid.Attribute, order, cuts []int) {
	ends := append(append([]int(nil), cuts...), len(order)-1)
	start := 0
	for _, end := range ends {
		run := order[start : end+1]
		if src.Type == grid.Continuous {
			lower := src.Part(run[0]).Interval.Lower
			upper := src.Part(run[len(run)-1]).Interval.Upper
			if start == 0 {
				lower = grid.MinLowerBound
			}
			if end == len(order)-1 {
				upper = grid.MaxUpperBound
			}
			dst.AddInterval(lower, upper)
		} else {
			var values []grid.Value
			for _, u := range run {
				values = append(values, src.Part(u).Values...)
			}
			dst.AddValueSet(values...)
		}
		start = end + 1
	}
}
