// SPDX-License-Identifier: MIT
// Package: grid
//
// check.go: integrity control of a complete grid.
//
// Rules, checked in this order:
//   1. attribute names unique, at least one part per attribute;
//   2. continuous: intervals sorted, contiguous, covering ]-inf, +inf];
//   3. symbol: values disjoint across parts, no empty part, exactly one default part;
//   4. garbage part index valid;
//   5. cells: arity, part indexes, frequency width, no negative count, unique keys.

package grid

import "math"

// Check verifies the structural integrity of the grid. Cost O(n·k + values).
func (g *Grid) Check() error {
	names := make(map[string]struct{}, len(g.attributes))
	for i, a := range g.attributes {
		if _, dup := names[a.Name]; dup {
			return inconsistentf("attribute %q declared twice", a.Name)
		}
		names[a.Name] = struct{}{}
		if a.index != i {
			return inconsistentf("attribute %q index %d at position %d", a.Name, a.index, i)
		}
		if err := a.Check(); err != nil {
			return err
		}
	}
	return g.checkCells()
}

// Check verifies the parts of one attribute: rules 1 to 4 above.
func (a *Attribute) Check() error {
	if len(a.parts) == 0 {
		return inconsistentf("attribute %q has no part", a.Name)
	}
	switch a.Type {
	case Continuous:
		if err := a.checkIntervals(); err != nil {
			return err
		}
	case Symbol:
		if err := a.checkValueSets(); err != nil {
			return err
		}
	default:
		return inconsistentf("attribute %q has unknown type %d", a.Name, int(a.Type))
	}
	if a.garbage != NoGarbagePart && (a.garbage < 0 || a.garbage >= len(a.parts)) {
		return inconsistentf("attribute %q garbage part %d of %d", a.Name, a.garbage, len(a.parts))
	}
	return nil
}

func (a *Attribute) checkIntervals() error {
	first, last := a.parts[0].Interval, a.parts[len(a.parts)-1].Interval
	if !math.IsInf(first.Lower, -1) {
		return inconsistentf("attribute %q first interval %s does not start at -inf", a.Name, first)
	}
	if !math.IsInf(last.Upper, 1) {
		return inconsistentf("attribute %q last interval %s does not end at +inf", a.Name, last)
	}
	for i := range a.parts {
		iv := a.parts[i].Interval
		if !(iv.Lower < iv.Upper) {
			return inconsistentf("attribute %q interval %d %s is empty", a.Name, i, iv)
		}
		if i > 0 && a.parts[i-1].Interval.Upper != iv.Lower {
			return inconsistentf("attribute %q intervals %d and %d are not contiguous", a.Name, i-1, i)
		}
	}
	return nil
}

func (a *Attribute) checkValueSets() error {
	seen := make(map[string]int, a.StoredValueNumber())
	defaults := 0
	for i := range a.parts {
		p := &a.parts[i]
		if len(p.Values) == 0 {
			return inconsistentf("attribute %q part %d has no value", a.Name, i)
		}
		for _, v := range p.Values {
			if j, dup := seen[v.Symbol]; dup {
				return inconsistentf("attribute %q value %q in parts %d and %d", a.Name, v.Symbol, j, i)
			}
			seen[v.Symbol] = i
		}
		if p.IsDefault() {
			defaults++
		}
	}
	if defaults != 1 {
		return inconsistentf("attribute %q has %d default parts", a.Name, defaults)
	}
	return nil
}

func (g *Grid) checkCells() error {
	width := g.frequencyWidth()
	if len(g.cellIndex) != len(g.cells) {
		return inconsistentf("cell index holds %d keys for %d cells", len(g.cellIndex), len(g.cells))
	}
	for i := range g.cells {
		c := &g.cells[i]
		if len(c.parts) != len(g.attributes) {
			return inconsistentf("cell %d has %d parts for %d attributes", i, len(c.parts), len(g.attributes))
		}
		for a, p := range c.parts {
			if p < 0 || p >= g.attributes[a].PartNumber() {
				return inconsistentf("cell %d references part %d of attribute %q", i, p, g.attributes[a].Name)
			}
		}
		if len(c.freqs) != width {
			return inconsistentf("cell %d frequency vector has length %d, want %d", i, len(c.freqs), width)
		}
		for _, f := range c.freqs {
			if f < 0 {
				return inconsistentf("cell %d has negative frequency %d", i, f)
			}
		}
		if j, ok := g.cellIndex[cellKey(c.parts)]; !ok || j != i {
			return inconsistentf("cell %d is not indexed by its parts", i)
		}
	}
	return nil
}
