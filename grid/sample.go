// SPDX-License-Identifier: MIT
// Package: grid
//
// sample.go: reproducible synthetic grids for tests, examples and benchmarks.
//
// Layout of a sample grid:
//   • symbol attributes "S1".."Sn" first, then continuous attributes "C1".."Cm";
//   • every attribute has PartNumber parts, i.e. PartNumber distinct values:
//     symbol part k holds "V<k+1>" (the last part also holds StarValue),
//     continuous part k covers ]k+0.5, k+1.5] with open ends at ±inf;
//   • target values "T1".."Tt" (unsupervised when TargetValueNumber is 0);
//   • instance i falls in part i of every attribute while i < PartNumber, so
//     no part is empty once InstanceNumber >= PartNumber; later instances are
//     drawn uniformly.

package grid

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// SampleConfig parameterises NewSampleGrid.
type SampleConfig struct {
	SymbolAttributeNumber     int
	ContinuousAttributeNumber int
	PartNumber                int
	TargetValueNumber         int
	InstanceNumber            int
	Seed                      uint64
}

// NewSampleGrid builds a complete grid (parts, cells, statistics) from cfg.
// It panics on negative sizes or a PartNumber below 1.
func NewSampleGrid(cfg SampleConfig) *Grid {
	if cfg.SymbolAttributeNumber < 0 || cfg.ContinuousAttributeNumber < 0 ||
		cfg.TargetValueNumber < 0 || cfg.InstanceNumber < 0 || cfg.PartNumber < 1 {
		panic(fmt.Sprintf("grid: NewSampleGrid(%+v): invalid sizes", cfg))
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	g := New()
	targets := make([]string, cfg.TargetValueNumber)
	for t := range targets {
		targets[t] = "T" + strconv.Itoa(t+1)
	}
	g.SetTargetValues(targets)

	k := cfg.PartNumber
	for i := 0; i < cfg.SymbolAttributeNumber; i++ {
		a := g.AddAttribute("S"+strconv.Itoa(i+1), Symbol)
		a.InitialValueNumber = k
		for p := 0; p < k; p++ {
			a.AddValueSet(Value{Symbol: "V" + strconv.Itoa(p+1)})
		}
		a.AddValue(k-1, Value{Symbol: StarValue})
	}
	for i := 0; i < cfg.ContinuousAttributeNumber; i++ {
		a := g.AddAttribute("C"+strconv.Itoa(i+1), Continuous)
		a.InitialValueNumber = cfg.InstanceNumber
		for p := 0; p < k; p++ {
			lower, upper := float64(p)+0.5, float64(p)+1.5
			if p == 0 {
				lower = MinLowerBound
			}
			if p == k-1 {
				upper = MaxUpperBound
			}
			a.AddInterval(lower, upper)
		}
	}

	parts := make([]int, g.AttributeNumber())
	for n := 0; n < cfg.InstanceNumber; n++ {
		for a := range parts {
			if n < k {
				parts[a] = n
			} else {
				parts[a] = rng.IntN(k)
			}
		}
		target := 0
		if cfg.TargetValueNumber > 0 {
			target = rng.IntN(cfg.TargetValueNumber)
		}
		c := g.LookupOrAddCell(parts)
		g.cells[c].freqs[target]++
		for a, p := range parts {
			attr := g.attributes[a]
			if attr.Type == Symbol {
				attr.parts[p].Values[0].Frequency++
			}
		}
	}
	g.UpdateStatistics()
	return g
}
