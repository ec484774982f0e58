// SPDX-License-Identifier: MIT
// Package: grid
//
// attribute.go: one dimension of a data grid and its part arena.
//
// Contract:
//   • Parts live in a contiguous slice owned by the attribute; their index is
//     their identity, cells refer to parts by index.
//   • The part type is fixed by the attribute type: AddInterval on a symbol
//     attribute (or AddValueSet on a continuous one) panics.
//   • Removing parts is refused while the owning grid has cells, since it
//     would invalidate cell keys.

package grid

import "sort"

// NoGarbagePart is the GarbagePart index of an attribute without garbage part.
const NoGarbagePart = -1

// Attribute is one dimension of a Grid.
type Attribute struct {
	// Name identifies the attribute within its grid.
	Name string
	// Type is fixed at creation.
	Type AttributeType
	// InitialValueNumber is the instance count for continuous attributes and
	// the distinct value count (StarValue excluded) for symbol attributes.
	InitialValueNumber int
	// GranularizedValueNumber is the value count after granularization:
	// theoretical partile number for continuous attributes, realised group
	// number for symbol attributes.
	GranularizedValueNumber int
	// CatchAllValueNumber is the number of values collapsed into the garbage part.
	CatchAllValueNumber int
	// Cost is an optional construction cost used by regularized criteria.
	Cost float64

	parts   []Part
	garbage int
	index   int
	owner   *Grid

	// symbol -> part index, built on demand by LookupSymbolPart.
	symbolIndex map[string]int
}

func newAttribute(owner *Grid, name string, t AttributeType, index int) *Attribute {
	return &Attribute{
		Name:    name,
		Type:    t,
		garbage: NoGarbagePart,
		index:   index,
		owner:   owner,
	}
}

// Index returns the position of the attribute in its grid.
func (a *Attribute) Index() int { return a.index }

// PartNumber returns the number of parts.
func (a *Attribute) PartNumber() int { return len(a.parts) }

// Part returns the i-th part. The pointer is invalidated by the next part
// insertion or sort.
func (a *Attribute) Part(i int) *Part {
	if i < 0 || i >= len(a.parts) {
		panicf("Attribute.Part", ErrPartIndex, "attribute %q index %d of %d", a.Name, i, len(a.parts))
	}
	return &a.parts[i]
}

// AddInterval appends the interval ]lower, upper] and returns its index.
func (a *Attribute) AddInterval(lower, upper float64) int {
	if a.Type != Continuous {
		panicf("AddInterval", ErrTypeMismatch, "attribute %q is %s", a.Name, a.Type)
	}
	a.parts = append(a.parts, Part{Interval: Interval{Lower: lower, Upper: upper}})
	return len(a.parts) - 1
}

// AddValueSet appends a part holding the given values and returns its index.
func (a *Attribute) AddValueSet(values ...Value) int {
	if a.Type != Symbol {
		panicf("AddValueSet", ErrTypeMismatch, "attribute %q is %s", a.Name, a.Type)
	}
	a.parts = append(a.parts, Part{Values: append([]Value(nil), values...)})
	a.symbolIndex = nil
	return len(a.parts) - 1
}

// AddValue appends one value to an existing symbol part.
func (a *Attribute) AddValue(part int, v Value) {
	if a.Type != Symbol {
		panicf("AddValue", ErrTypeMismatch, "attribute %q is %s", a.Name, a.Type)
	}
	p := a.Part(part)
	p.Values = append(p.Values, v)
	a.symbolIndex = nil
}

// AddPart appends a copy of p and returns its index. The caller is
// responsible for filling the member that matches the attribute type.
func (a *Attribute) AddPart(p Part) int {
	a.parts = append(a.parts, clonePart(p))
	a.symbolIndex = nil
	return len(a.parts) - 1
}

// DeleteAllParts removes every part. Refused while the grid has cells.
func (a *Attribute) DeleteAllParts() {
	if a.owner != nil && a.owner.CellNumber() > 0 {
		panicf("DeleteAllParts", ErrCellsPresent, "attribute %q", a.Name)
	}
	a.parts = nil
	a.garbage = NoGarbagePart
	a.symbolIndex = nil
}

// GarbagePart returns the index of the garbage part, or NoGarbagePart.
func (a *Attribute) GarbagePart() int { return a.garbage }

// SetGarbagePart designates part i as garbage part (NoGarbagePart to clear).
func (a *Attribute) SetGarbagePart(i int) {
	if i != NoGarbagePart {
		if a.Type != Symbol {
			panicf("SetGarbagePart", ErrTypeMismatch, "attribute %q is %s", a.Name, a.Type)
		}
		a.Part(i)
	}
	a.garbage = i
}

// GarbageModalityNumber returns the value count of the garbage part, 0 if none.
func (a *Attribute) GarbageModalityNumber() int {
	if a.garbage == NoGarbagePart {
		return 0
	}
	return len(a.parts[a.garbage].Values)
}

// StoredValueNumber is the number of values stored in the attribute parts:
// the StarValue included for symbol attributes, the part count otherwise.
func (a *Attribute) StoredValueNumber() int {
	if a.Type == Continuous {
		return len(a.parts)
	}
	n := 0
	for i := range a.parts {
		n += len(a.parts[i].Values)
	}
	return n
}

// DefaultPart returns the index of the part holding StarValue, -1 if none.
// Continuous attributes answer the first part, which holds the missing value.
func (a *Attribute) DefaultPart() int {
	if a.Type == Continuous {
		if len(a.parts) == 0 {
			return -1
		}
		return 0
	}
	for i := range a.parts {
		if a.parts[i].IsDefault() {
			return i
		}
	}
	return -1
}

// LookupContinuousPart returns the index of the interval containing v.
// Intervals must be sorted; NaN maps to the first interval.
func (a *Attribute) LookupContinuousPart(v float64) int {
	if a.Type != Continuous {
		panicf("LookupContinuousPart", ErrTypeMismatch, "attribute %q is %s", a.Name, a.Type)
	}
	if len(a.parts) == 0 {
		return -1
	}
	if v != v {
		return 0
	}
	i := sort.Search(len(a.parts), func(i int) bool { return a.parts[i].Interval.Upper >= v })
	if i == len(a.parts) {
		return len(a.parts) - 1
	}
	return i
}

// LookupSymbolPart returns the index of the part listing s, or the default
// part when s is not listed.
func (a *Attribute) LookupSymbolPart(s string) int {
	if a.Type != Symbol {
		panicf("LookupSymbolPart", ErrTypeMismatch, "attribute %q is %s", a.Name, a.Type)
	}
	if a.symbolIndex == nil {
		a.symbolIndex = make(map[string]int, a.StoredValueNumber())
		for i := range a.parts {
			for _, v := range a.parts[i].Values {
				a.symbolIndex[v.Symbol] = i
			}
		}
	}
	if i, ok := a.symbolIndex[s]; ok {
		return i
	}
	return a.DefaultPart()
}

// IsInformative reports whether the attribute has more than one part.
func (a *Attribute) IsInformative() bool { return len(a.parts) > 1 }
