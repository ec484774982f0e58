// SPDX-License-Identifier: MIT
// Package: quantile
//
// group.go: frequency-threshold builder for symbol attributes.
//
// Algorithm (level g, N instances, q = PartileNumber(g, N)):
//   threshold = max(⌈N/q⌉, 2). Units with frequency >= threshold become
//   singleton groups, ordered by decreasing frequency (ties by unit order).
//   Every other unit joins one catch-all group placed last.
// At the finest level the threshold is 2: frequent units are exactly those
// with frequency > 1, which gives MaxPartNumber.

package quantile

import (
	"fmt"
	"sort"
)

// GroupBuilder groups unordered units by frequency.
type GroupBuilder struct {
	freqs []int
	order []int // unit indexes by decreasing frequency
	n     int
}

// NewGroupBuilder returns a builder over the given unit frequencies.
// It panics on a negative frequency.
func NewGroupBuilder(freqs []int) *GroupBuilder {
	checkFrequencies("NewGroupBuilder", freqs)
	b := &GroupBuilder{
		freqs: append([]int(nil), freqs...),
		order: make([]int, len(freqs)),
		n:     total(freqs),
	}
	for u := range b.order {
		b.order[u] = u
	}
	sort.SliceStable(b.order, func(i, j int) bool {
		return b.freqs[b.order[i]] > b.freqs[b.order[j]]
	})
	return b
}

// UnitNumber implements Builder.
func (b *GroupBuilder) UnitNumber() int { return len(b.freqs) }

// TotalFrequency implements Builder.
func (b *GroupBuilder) TotalFrequency() int { return b.n }

// MaxPartNumber counts units with frequency > 1, plus one when singletons exist.
func (b *GroupBuilder) MaxPartNumber() int {
	frequent, rare := 0, 0
	for _, f := range b.freqs {
		if f > 1 {
			frequent++
		} else {
			rare++
		}
	}
	if rare > 0 {
		return frequent + 1
	}
	if frequent == 0 {
		return 1
	}
	return frequent
}

// Quantiles implements Builder.
func (b *GroupBuilder) Quantiles(g int) Partition {
	p := Partition{Groups: make([]int, len(b.freqs)), CatchAll: NoCatchAll}
	if len(b.freqs) == 0 {
		return p
	}
	threshold := 2
	if g > 0 {
		q := PartileNumber(g, b.n)
		if t := (b.n + q - 1) / q; t > threshold {
			threshold = t
		}
	} else {
		threshold = b.n + 1
	}

	count := 0
	for _, u := range b.order {
		if b.freqs[u] < threshold {
			break
		}
		p.Groups[u] = count
		count++
	}
	if count < len(b.freqs) {
		p.CatchAll = count
		for u, f := range b.freqs {
			if f < threshold {
				p.Groups[u] = count
			}
		}
		count++
	}
	// a lone catch-all is just the single part
	if count == 1 {
		p.CatchAll = NoCatchAll
	}
	p.Count = count
	return p
}

// String describes the builder.
func (b *GroupBuilder) String() string {
	return fmt.Sprintf("GroupBuilder(units=%d, N=%d)", b.UnitNumber(), b.n)
}
