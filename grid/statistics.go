// SPDX-License-Identifier: MIT
// Package: grid
//
// statistics.go: global statistics of a grid.
//
// Part frequencies are cached on the parts and refreshed by UpdateStatistics;
// the other statistics are computed on demand from the cell arena.
// Entropies are expressed in bits.

package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// UpdateStatistics recomputes every part frequency from the cells.
func (g *Grid) UpdateStatistics() {
	for _, a := range g.attributes {
		for i := range a.parts {
			a.parts[i].Frequency = 0
		}
	}
	for i := range g.cells {
		c := &g.cells[i]
		f := c.Frequency()
		for a, p := range c.parts {
			g.attributes[a].parts[p].Frequency += f
		}
	}
}

// Frequency returns the total frequency of the grid.
func (g *Grid) Frequency() int {
	total := 0
	for i := range g.cells {
		total += g.cells[i].Frequency()
	}
	return total
}

// TargetFrequencies returns the total frequency per target value.
func (g *Grid) TargetFrequencies() []int {
	totals := make([]int, g.frequencyWidth())
	for i := range g.cells {
		for t, f := range g.cells[i].freqs {
			totals[t] += f
		}
	}
	return totals
}

// InformativeAttributeNumber counts attributes with more than one part.
func (g *Grid) InformativeAttributeNumber() int {
	n := 0
	for _, a := range g.attributes {
		if a.IsInformative() {
			n++
		}
	}
	return n
}

// TotalPartNumber sums the part counts of all attributes.
func (g *Grid) TotalPartNumber() int {
	n := 0
	for _, a := range g.attributes {
		n += a.PartNumber()
	}
	return n
}

// LnGridSize is the natural log of the product of the part counts.
func (g *Grid) LnGridSize() float64 {
	ln := 0.0
	for _, a := range g.attributes {
		if a.PartNumber() > 0 {
			ln += math.Log(float64(a.PartNumber()))
		}
	}
	return ln
}

// SourceEntropy is the entropy of the distribution of instances over cells.
func (g *Grid) SourceEntropy() float64 {
	p := make([]float64, len(g.cells))
	for i := range g.cells {
		p[i] = float64(g.cells[i].Frequency())
	}
	return entropyBits(p)
}

// TargetEntropy is the entropy of the distribution of instances over target values.
func (g *Grid) TargetEntropy() float64 {
	totals := g.TargetFrequencies()
	p := make([]float64, len(totals))
	for t, f := range totals {
		p[t] = float64(f)
	}
	return entropyBits(p)
}

// MutualEntropy is the mutual information between cells and target values:
// H(cells) + H(target) - H(cells, target).
func (g *Grid) MutualEntropy() float64 {
	joint := make([]float64, 0, len(g.cells)*g.frequencyWidth())
	for i := range g.cells {
		for _, f := range g.cells[i].freqs {
			joint = append(joint, float64(f))
		}
	}
	mi := g.SourceEntropy() + g.TargetEntropy() - entropyBits(joint)
	if mi < 0 {
		return 0
	}
	return mi
}

// Entropy normalises counts into probabilities in place and returns their
// entropy in nats. All-zero counts have entropy 0.
func Entropy(counts []float64) float64 {
	total := floats.Sum(counts)
	if total == 0 {
		return 0
	}
	floats.Scale(1/total, counts)
	return stat.Entropy(counts)
}

func entropyBits(counts []float64) float64 {
	return Entropy(counts) / math.Ln2
}
