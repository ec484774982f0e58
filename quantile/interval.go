// SPDX-License-Identifier: MIT
// Package: quantile
//
// interval.go: equal-frequency builder for continuous attributes.
//
// Algorithm (level g, N instances, q = PartileNumber(g, N)):
//   1. Cumulate unit frequencies: cum[u] = f[0] + … + f[u].
//   2. For i = 1..q-1 the cut rank is r = ⌊i·N/q⌋; the cut is placed after the
//      first unit u with cum[u] >= r (binary search), so a cut always follows
//      a non-empty unit.
//   3. Duplicate cuts collapse; a trailing run of empty units joins the last part.
// Complexity: O(U + q·log U).

package quantile

import (
	"fmt"
	"sort"
)

// IntervalBuilder partitions ordered units into equal-frequency intervals.
type IntervalBuilder struct {
	freqs []int
	cum   []int
}

// NewIntervalBuilder returns a builder over units given in ascending value
// order. It panics on a negative frequency.
func NewIntervalBuilder(freqs []int) *IntervalBuilder {
	checkFrequencies("NewIntervalBuilder", freqs)
	b := &IntervalBuilder{
		freqs: append([]int(nil), freqs...),
		cum:   make([]int, len(freqs)),
	}
	running := 0
	for u, f := range freqs {
		running += f
		b.cum[u] = running
	}
	return b
}

// UnitNumber implements Builder.
func (b *IntervalBuilder) UnitNumber() int { return len(b.freqs) }

// TotalFrequency implements Builder.
func (b *IntervalBuilder) TotalFrequency() int {
	if len(b.cum) == 0 {
		return 0
	}
	return b.cum[len(b.cum)-1]
}

// MaxPartNumber is the number of non-empty units, at least 1.
func (b *IntervalBuilder) MaxPartNumber() int {
	n := 0
	for _, f := range b.freqs {
		if f > 0 {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// Quantiles implements Builder.
func (b *IntervalBuilder) Quantiles(g int) Partition {
	p := Partition{Groups: make([]int, len(b.freqs)), CatchAll: NoCatchAll}
	if len(b.freqs) == 0 {
		return p
	}
	n := b.TotalFrequency()
	q := PartileNumber(g, n)

	// cut after unit u for every u in cuts, ascending and distinct
	var cuts []int
	last := len(b.freqs) - 1
	for i := 1; i < q; i++ {
		r := i * n / q
		u := sort.SearchInts(b.cum, r)
		if u >= last {
			break
		}
		if len(cuts) == 0 || cuts[len(cuts)-1] < u {
			cuts = append(cuts, u)
		}
	}
	// drop a final cut that would isolate empty units only
	if k := len(cuts); k > 0 && b.cum[last] == b.cum[cuts[k-1]] {
		cuts = cuts[:k-1]
	}

	part, next := 0, 0
	for u := range b.freqs {
		p.Groups[u] = part
		if next < len(cuts) && cuts[next] == u {
			part++
			next++
		}
	}
	p.Count = part + 1
	return p
}

// String describes the builder.
func (b *IntervalBuilder) String() string {
	return fmt.Sprintf("IntervalBuilder(units=%d, N=%d)", b.UnitNumber(), b.TotalFrequency())
}
