// SPDX-License-Identifier: MIT
// Package: grid
//
// cell.go: cells, one stored tuple of parts with its per-target frequency vector.

package grid

// Cell is one instantiated tuple of parts with its frequency vector.
type Cell struct {
	parts []int
	freqs []int
}

// Parts returns the part index per attribute. The slice must not be modified.
func (c *Cell) Parts() []int { return c.parts }

// PartAt returns the part index of the cell for attribute a.
func (c *Cell) PartAt(a int) int { return c.parts[a] }

// Frequencies returns the per-target frequency vector (length 1 when
// unsupervised). The slice must not be modified.
func (c *Cell) Frequencies() []int { return c.freqs }

// Frequency returns the total frequency of the cell.
func (c *Cell) Frequency() int {
	total := 0
	for _, f := range c.freqs {
		total += f
	}
	return total
}

// TargetFrequency returns the frequency of target value t.
func (c *Cell) TargetFrequency(t int) int {
	c.checkTarget("TargetFrequency", t)
	return c.freqs[t]
}

// SetFrequency sets the frequency of target value t (0 when unsupervised).
func (c *Cell) SetFrequency(t, n int) {
	c.checkTarget("SetFrequency", t)
	c.freqs[t] = n
}

// AddFrequency adds delta to the frequency of target value t.
func (c *Cell) AddFrequency(t, delta int) {
	c.checkTarget("AddFrequency", t)
	c.freqs[t] += delta
}

// AddFrequenciesFrom adds every count of other to the cell.
func (c *Cell) AddFrequenciesFrom(other *Cell) {
	c.addFrequencies(other.freqs)
}

func (c *Cell) addFrequencies(freqs []int) {
	if len(freqs) != len(c.freqs) {
		panicf("AddFrequenciesFrom", ErrTargetIndex, "vector length %d, want %d", len(freqs), len(c.freqs))
	}
	for t, f := range freqs {
		c.freqs[t] += f
	}
}

func (c *Cell) checkTarget(method string, t int) {
	if t < 0 || t >= len(c.freqs) {
		panicf(method, ErrTargetIndex, "index %d of %d", t, len(c.freqs))
	}
}
