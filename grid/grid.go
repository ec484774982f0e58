// SPDX-License-Identifier: MIT
// Package: grid
//
// grid.go: the Grid container: attributes, target values and the cell arena.
//
// Design:
//   • cells is a contiguous arena; cellIndex maps the encoded part tuple of a
//     cell to its arena index, so lookups never walk the cell list.
//   • Attribute order is meaningful and preserved by every operation.
//   • Granularity 0 means "not granularized".

package grid

import (
	"encoding/binary"
)

// Grid is a data grid. The zero value is not usable; call New.
type Grid struct {
	attributes   []*Attribute
	targetValues []string
	cells        []Cell
	cellIndex    map[string]int
	granularity  int
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{cellIndex: make(map[string]int)}
}

// IsEmpty reports whether the grid has no attribute, no target value and no cell.
func (g *Grid) IsEmpty() bool {
	return len(g.attributes) == 0 && len(g.targetValues) == 0 && len(g.cells) == 0
}

// AttributeNumber returns the number of attributes.
func (g *Grid) AttributeNumber() int { return len(g.attributes) }

// Attribute returns the i-th attribute.
func (g *Grid) Attribute(i int) *Attribute { return g.attributes[i] }

// Attributes returns the attributes in grid order. The slice must not be modified.
func (g *Grid) Attributes() []*Attribute { return g.attributes }

// SearchAttribute returns the attribute named name, or nil.
func (g *Grid) SearchAttribute(name string) *Attribute {
	for _, a := range g.attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// AddAttribute appends a new attribute without parts.
func (g *Grid) AddAttribute(name string, t AttributeType) *Attribute {
	if name == "" {
		panicf("AddAttribute", ErrEmptyName, "type %s", t)
	}
	if len(g.cells) > 0 {
		panicf("AddAttribute", ErrCellsPresent, "attribute %q", name)
	}
	if g.SearchAttribute(name) != nil {
		panicf("AddAttribute", ErrDuplicateAttribute, "attribute %q", name)
	}
	a := newAttribute(g, name, t, len(g.attributes))
	g.attributes = append(g.attributes, a)
	return a
}

// TargetValueNumber returns the number of target values (0 when unsupervised).
func (g *Grid) TargetValueNumber() int { return len(g.targetValues) }

// TargetValues returns the target values. The slice must not be modified.
func (g *Grid) TargetValues() []string { return g.targetValues }

// SetTargetValues sets the target values. Refused while cells exist.
func (g *Grid) SetTargetValues(values []string) {
	if len(g.cells) > 0 {
		panicf("SetTargetValues", ErrCellsPresent, "%d cells", len(g.cells))
	}
	g.targetValues = append([]string(nil), values...)
}

// Granularity returns the granularity level, 0 when not granularized.
func (g *Grid) Granularity() int { return g.granularity }

// SetGranularity records the granularity level the grid was built with.
func (g *Grid) SetGranularity(level int) { g.granularity = level }

// frequencyWidth is the length of every cell frequency vector.
func (g *Grid) frequencyWidth() int {
	if len(g.targetValues) == 0 {
		return 1
	}
	return len(g.targetValues)
}

// CellNumber returns the number of cells.
func (g *Grid) CellNumber() int { return len(g.cells) }

// Cell returns the i-th cell.
func (g *Grid) Cell(i int) *Cell { return &g.cells[i] }

// AddCell creates the cell of the given part tuple and returns its index.
// The tuple is copied.
func (g *Grid) AddCell(parts []int) int {
	g.validateCellParts("AddCell", parts)
	key := cellKey(parts)
	if _, ok := g.cellIndex[key]; ok {
		panicf("AddCell", ErrDuplicateCell, "parts %v", parts)
	}
	return g.insertCell(key, parts)
}

// LookupCell returns the index of the cell of the given part tuple, or -1.
func (g *Grid) LookupCell(parts []int) int {
	if i, ok := g.cellIndex[cellKey(parts)]; ok {
		return i
	}
	return -1
}

// LookupOrAddCell returns the index of the cell of the given part tuple,
// creating an empty one if needed.
func (g *Grid) LookupOrAddCell(parts []int) int {
	key := cellKey(parts)
	if i, ok := g.cellIndex[key]; ok {
		return i
	}
	g.validateCellParts("LookupOrAddCell", parts)
	return g.insertCell(key, parts)
}

func (g *Grid) insertCell(key string, parts []int) int {
	g.cells = append(g.cells, Cell{
		parts: append([]int(nil), parts...),
		freqs: make([]int, g.frequencyWidth()),
	})
	i := len(g.cells) - 1
	g.cellIndex[key] = i
	return i
}

func (g *Grid) validateCellParts(method string, parts []int) {
	if len(parts) != len(g.attributes) {
		panicf(method, ErrInvalidCell, "%d parts for %d attributes", len(parts), len(g.attributes))
	}
	for a, p := range parts {
		if p < 0 || p >= g.attributes[a].PartNumber() {
			panicf(method, ErrInvalidCell, "attribute %q part %d of %d",
				g.attributes[a].Name, p, g.attributes[a].PartNumber())
		}
	}
}

// DeleteAllCells removes every cell and resets part frequencies.
func (g *Grid) DeleteAllCells() {
	g.cells = nil
	g.cellIndex = make(map[string]int)
	for _, a := range g.attributes {
		for i := range a.parts {
			a.parts[i].Frequency = 0
		}
	}
}

// DeleteAll resets the grid to its empty state.
func (g *Grid) DeleteAll() {
	for _, a := range g.attributes {
		a.owner = nil
	}
	g.attributes = nil
	g.targetValues = nil
	g.cells = nil
	g.cellIndex = make(map[string]int)
	g.granularity = 0
}

// DeleteNonInformativeAttributes removes the attributes with at most one
// part and reindexes the others. Refused while cells exist.
func (g *Grid) DeleteNonInformativeAttributes() {
	if len(g.cells) > 0 {
		panicf("DeleteNonInformativeAttributes", ErrCellsPresent, "%d cells", len(g.cells))
	}
	kept := g.attributes[:0]
	for _, a := range g.attributes {
		if a.IsInformative() {
			a.index = len(kept)
			kept = append(kept, a)
		} else {
			a.owner = nil
		}
	}
	for i := len(kept); i < len(g.attributes); i++ {
		g.attributes[i] = nil
	}
	g.attributes = kept
}

// rebuildCellIndex recomputes cellIndex after cell keys changed.
func (g *Grid) rebuildCellIndex() {
	g.cellIndex = make(map[string]int, len(g.cells))
	for i := range g.cells {
		g.cellIndex[cellKey(g.cells[i].parts)] = i
	}
}

// cellKey encodes a part tuple as a map key.
func cellKey(parts []int) string {
	buf := make([]byte, 0, len(parts)*2)
	for _, p := range parts {
		buf = binary.AppendUvarint(buf, uint64(p))
	}
	return string(buf)
}
