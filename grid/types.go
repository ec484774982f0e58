// SPDX-License-Identifier: MIT
// Package: grid
//
// types.go: value types shared by attributes, parts and cells.

package grid

import (
	"math"
	"strconv"
	"strings"
)

// AttributeType selects the domain kind of an attribute.
type AttributeType int

const (
	// Continuous attributes are partitioned into contiguous intervals.
	Continuous AttributeType = iota
	// Symbol attributes are partitioned into disjoint value sets.
	Symbol
)

// String returns "Continuous" or "Symbol".
func (t AttributeType) String() string {
	switch t {
	case Continuous:
		return "Continuous"
	case Symbol:
		return "Symbol"
	default:
		return "AttributeType(" + strconv.Itoa(int(t)) + ")"
	}
}

// StarValue stands for every symbol not explicitly listed in an attribute:
// unseen values and the missing value. The part holding it is the default part.
const StarValue = " * "

// Interval bounds of the first and last parts of a continuous attribute.
// The missing value is folded into the first interval.
var (
	MinLowerBound = math.Inf(-1)
	MaxUpperBound = math.Inf(1)
)

// Interval is the half-open range ]Lower, Upper].
type Interval struct {
	Lower float64
	Upper float64
}

// Contains reports whether v lies in ]Lower, Upper].
// NaN (missing) belongs to the interval starting at MinLowerBound.
func (iv Interval) Contains(v float64) bool {
	if math.IsNaN(v) {
		return iv.Lower == MinLowerBound
	}
	return iv.Lower < v && v <= iv.Upper
}

// String renders the interval as "]a;b]".
func (iv Interval) String() string {
	return "]" + formatBound(iv.Lower) + ";" + formatBound(iv.Upper) + "]"
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsInf(v, 1):
		return "+inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// Value is one symbol of a value set with its instance count.
type Value struct {
	Symbol    string
	Frequency int
}

// Part is one element of an attribute partition. Only the member matching the
// attribute type is meaningful: Interval for continuous, Values for symbol.
// Frequency is the cumulated frequency of the part's cells, maintained by
// Grid.UpdateStatistics.
type Part struct {
	Interval  Interval
	Values    []Value
	Frequency int
}

// IsDefault reports whether the part holds the StarValue.
func (p *Part) IsDefault() bool {
	for _, v := range p.Values {
		if v.Symbol == StarValue {
			return true
		}
	}
	return false
}

// TrueValueNumber is the number of values of the part, StarValue excluded.
func (p *Part) TrueValueNumber() int {
	n := len(p.Values)
	if p.IsDefault() {
		n--
	}
	return n
}

// ValueFrequency sums the frequencies recorded on the part's values.
func (p *Part) ValueFrequency() int {
	total := 0
	for _, v := range p.Values {
		total += v.Frequency
	}
	return total
}

// Label describes the part: the interval for continuous parts, "{a, b}" otherwise.
func (p *Part) Label(t AttributeType) string {
	if t == Continuous {
		return p.Interval.String()
	}
	symbols := make([]string, len(p.Values))
	for i, v := range p.Values {
		symbols[i] = v.Symbol
	}
	return "{" + strings.Join(symbols, ", ") + "}"
}

func clonePart(p Part) Part {
	out := p
	if p.Values != nil {
		out.Values = append([]Value(nil), p.Values...)
	}
	return out
}
