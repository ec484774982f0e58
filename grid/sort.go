// SPDX-License-Identifier: MIT
// Package: grid
//
// sort.go: canonical part order (intervals ascending, value sets by decreasing
// frequency) with cell remapping.

package grid

import "sort"

// SortAttributeParts orders the parts of every attribute for display:
// intervals by increasing bounds, groups by decreasing frequency (then first
// value), values inside a group by decreasing frequency with StarValue last.
// Cells and garbage designations follow their parts.
// Part frequencies must be up to date (see UpdateStatistics).
func (g *Grid) SortAttributeParts() {
	remap := make([][]int, len(g.attributes))
	for ai, a := range g.attributes {
		remap[ai] = a.sortParts()
	}
	for i := range g.cells {
		c := &g.cells[i]
		for a, p := range c.parts {
			c.parts[a] = remap[a][p]
		}
	}
	g.rebuildCellIndex()
}

// sortParts sorts the attribute parts and returns old index -> new index.
func (a *Attribute) sortParts() []int {
	order := make([]int, len(a.parts))
	for i := range order {
		order[i] = i
	}
	if a.Type == Continuous {
		sort.SliceStable(order, func(i, j int) bool {
			return a.parts[order[i]].Interval.Upper < a.parts[order[j]].Interval.Upper
		})
	} else {
		for i := range a.parts {
			sortValues(a.parts[i].Values)
		}
		sort.SliceStable(order, func(i, j int) bool {
			pi, pj := &a.parts[order[i]], &a.parts[order[j]]
			if pi.Frequency != pj.Frequency {
				return pi.Frequency > pj.Frequency
			}
			return firstSymbol(pi) < firstSymbol(pj)
		})
	}

	sorted := make([]Part, len(a.parts))
	remap := make([]int, len(a.parts))
	for newIdx, oldIdx := range order {
		sorted[newIdx] = a.parts[oldIdx]
		remap[oldIdx] = newIdx
	}
	a.parts = sorted
	if a.garbage != NoGarbagePart {
		a.garbage = remap[a.garbage]
	}
	a.symbolIndex = nil
	return remap
}

// AreAttributePartsSorted reports whether SortAttributeParts would keep the
// current order of every attribute.
func (g *Grid) AreAttributePartsSorted() bool {
	for _, a := range g.attributes {
		for i := 1; i < len(a.parts); i++ {
			prev, cur := &a.parts[i-1], &a.parts[i]
			if a.Type == Continuous {
				if prev.Interval.Upper > cur.Interval.Upper {
					return false
				}
				continue
			}
			if prev.Frequency < cur.Frequency ||
				(prev.Frequency == cur.Frequency && firstSymbol(prev) > firstSymbol(cur)) {
				return false
			}
		}
	}
	return true
}

func sortValues(values []Value) {
	sort.SliceStable(values, func(i, j int) bool {
		vi, vj := values[i], values[j]
		if (vi.Symbol == StarValue) != (vj.Symbol == StarValue) {
			return vj.Symbol == StarValue
		}
		if vi.Frequency != vj.Frequency {
			return vi.Frequency > vj.Frequency
		}
		return vi.Symbol < vj.Symbol
	})
}

func firstSymbol(p *Part) string {
	if len(p.Values) == 0 {
		return ""
	}
	return p.Values[0].Symbol
}
