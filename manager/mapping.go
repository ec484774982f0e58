// SPDX-License-Identifier: MIT
// Package: manager
//
// mapping.go: source part → target part correspondence.
//
// A target attribute is compatible with its source attribute when every
// target parts are themselves a valid partition (contiguous intervals, disjoint
// value sets with one default part) and every source part falls entirely
// inside one target part:
//   • continuous: the target interval containing the source upper bound also
//     contains the source lower bound;
//   • symbol: every value of the source part (StarValue included) is listed
//     by the same target part, unlisted values resolving to the default part.
// The mapping drives ExportCells, CheckParts and CheckCells.

package manager

import (
	"fmt"

	"github.com/katalvlaran/datagrid/grid"
)

// mapParts returns, for every part of src, the index of the dst part holding it.
func mapParts(src, dst *grid.Attribute) ([]int, error) {
	if src.Type != dst.Type {
		return nil, fmt.Errorf("type %s, source %s", dst.Type, src.Type)
	}
	if err := dst.Check(); err != nil {
		return nil, err
	}
	out := make([]int, src.PartNumber())
	if src.Type == grid.Continuous {
		for i := range out {
			iv := src.Part(i).Interval
			t := dst.LookupContinuousPart(iv.Upper)
			if dst.Part(t).Interval.Lower > iv.Lower || dst.Part(t).Interval.Upper < iv.Upper {
				return nil, fmt.Errorf("source interval %s split by target part %s", iv, dst.Part(t).Interval)
			}
			out[i] = t
		}
		return out, nil
	}
	for i := range out {
		p := src.Part(i)
		t := -1
		for _, v := range p.Values {
			k := dst.LookupSymbolPart(v.Symbol)
			if k < 0 {
				return nil, fmt.Errorf("value %q has no target part", v.Symbol)
			}
			if t >= 0 && k != t {
				return nil, fmt.Errorf("source part %s split across target parts %d and %d", p.Label(src.Type), t, k)
			}
			t = k
		}
		if t < 0 {
			t = dst.DefaultPart()
			if t < 0 {
				return nil, fmt.Errorf("empty source part %d and no default target part", i)
			}
		}
		out[i] = t
	}
	return out, nil
}

// coverage checks that every dst part receives at least one source part and
// that dst lists no symbol unknown to src.
func coverage(src, dst *grid.Attribute, mapping []int) error {
	hit := make([]bool, dst.PartNumber())
	for _, t := range mapping {
		hit[t] = true
	}
	for t, ok := range hit {
		if !ok {
			return fmt.Errorf("target part %s covers no source part", dst.Part(t).Label(dst.Type))
		}
	}
	if dst.Type == grid.Symbol {
		for t := 0; t < dst.PartNumber(); t++ {
			for _, v := range dst.Part(t).Values {
				if v.Symbol == grid.StarValue {
					continue
				}
				if s := src.LookupSymbolPart(v.Symbol); s < 0 || !listsSymbol(src.Part(s), v.Symbol) {
					return fmt.Errorf("target value %q not in source", v.Symbol)
				}
			}
		}
	}
	return nil
}

func listsSymbol(p *grid.Part, s string) bool {
	for _, v := range p.Values {
		if v.Symbol == s {
			return true
		}
	}
	return false
}

// targetMappings maps every target attribute to its source attribute index
// and part mapping. It stops at the first incompatible attribute.
func (m *Manager) targetMappings(target *grid.Grid) (srcIndex []int, mappings [][]int, err error) {
	srcIndex = make([]int, target.AttributeNumber())
	mappings = make([][]int, target.AttributeNumber())
	for i, a := range target.Attributes() {
		s := m.source.SearchAttribute(a.Name)
		if s == nil {
			return nil, nil, &CheckError{Kind: ErrAttributeMismatch, Attribute: a.Name, Detail: "not in source"}
		}
		mp, err := mapParts(s, a)
		if err != nil {
			return nil, nil, &CheckError{Kind: ErrPartMismatch, Attribute: a.Name, Detail: err.Error()}
		}
		srcIndex[i] = s.Index()
		mappings[i] = mp
	}
	return srcIndex, mappings, nil
}
