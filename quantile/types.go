// SPDX-License-Identifier: MIT
// Package: quantile
//
// types.go: Builder capability and Partition result.

package quantile

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrNegativeFrequency indicates a negative unit frequency given to a constructor.
var ErrNegativeFrequency = errors.New("quantile: negative unit frequency")

// NoCatchAll is the CatchAll index of a partition without catch-all group.
const NoCatchAll = -1

// Partition maps every unit of a builder to an output part.
type Partition struct {
	// Groups[u] is the output part of unit u, in [0, Count).
	Groups []int
	// Count is the realised number of output parts.
	Count int
	// CatchAll is the output part collecting infrequent units, or NoCatchAll.
	CatchAll int
}

// Members returns the units of output part p, in unit order.
func (p Partition) Members(part int) []int {
	var out []int
	for u, g := range p.Groups {
		if g == part {
			out = append(out, u)
		}
	}
	return out
}

// Builder produces the partition of one attribute at a granularity level.
type Builder interface {
	// Quantiles returns the partition at granularity g (g <= 0 yields one part).
	Quantiles(g int) Partition
	// MaxPartNumber is the part count reachable at the finest granularity.
	MaxPartNumber() int
	// TotalFrequency is the instance count N of the attribute.
	TotalFrequency() int
	// UnitNumber is the number of units the builder was built from.
	UnitNumber() int
}

// PartileNumber returns min(2^g, n), the theoretical part count at level g.
// It returns 1 for g <= 0 or n <= 1.
func PartileNumber(g, n int) int {
	if g <= 0 || n <= 1 {
		return 1
	}
	if g >= bits.UintSize-2 {
		return n
	}
	if q := 1 << uint(g); q < n {
		return q
	}
	return n
}

// MaxGranularity returns ⌈log2 n⌉, the smallest level where PartileNumber reaches n.
func MaxGranularity(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

func total(freqs []int) int {
	n := 0
	for _, f := range freqs {
		n += f
	}
	return n
}

func checkFrequencies(method string, freqs []int) {
	for u, f := range freqs {
		if f < 0 {
			panic(fmt.Errorf("%s: unit %d frequency %d: %w", method, u, f, ErrNegativeFrequency))
		}
	}
}
