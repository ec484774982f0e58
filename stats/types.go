// SPDX-License-Identifier: MIT
// Package: stats
//
// types.go: AttributeStats, ClassStats and the Partitioner capability.

package stats

import (
	"sort"

	"github.com/katalvlaran/datagrid/freqtable"
	"github.com/katalvlaran/datagrid/grid"
)

// Partitioner computes univariate partitions from frequency tables whose rows
// are the finest parts of an attribute.
type Partitioner interface {
	// Discretize merges consecutive rows into intervals and returns the coarser table.
	Discretize(table *freqtable.Table, granularity int) *freqtable.Table
	// Group assigns every row to a group. garbageGroup is the index of the
	// catch-all group, grid.NoGarbagePart when there is none.
	Group(table *freqtable.Table, granularity int) (groups []int, groupNumber, garbageGroup int)
}

// AttributeStats is the optimal univariate partition of one attribute.
type AttributeStats struct {
	AttributeName string
	Type          grid.AttributeType
	// Granularity is the level the partition was computed at.
	Granularity int
	// Level is the relevance of the attribute, in [0, 1].
	Level float64

	// Intervals is the continuous partition: one row per interval, ascending.
	Intervals *freqtable.Table

	// Groups maps every source part of a symbol attribute to its group.
	Groups      []int
	GroupNumber int

	// GarbageGroup is the catch-all group, meaningful when GarbageModalityNumber > 0.
	GarbageGroup          int
	GarbageModalityNumber int
}

// GarbagePart returns the garbage group index, grid.NoGarbagePart when none.
func (s *AttributeStats) GarbagePart() int {
	if s.GarbageModalityNumber == 0 {
		return grid.NoGarbagePart
	}
	return s.GarbageGroup
}

// PartNumber returns the number of parts of the stored partition.
func (s *AttributeStats) PartNumber() int {
	if s.Type == grid.Continuous {
		if s.Intervals == nil {
			return 0
		}
		return s.Intervals.RowNumber()
	}
	return s.GroupNumber
}

// Informative reports whether the stored partition has more than one part.
func (s *AttributeStats) Informative() bool { return s.PartNumber() > 1 }

// ClassStats gathers the univariate statistics of every attribute of a class.
type ClassStats struct {
	Attributes  []*AttributeStats
	Partitioner Partitioner
}

// Lookup returns the statistics of the named attribute, or nil.
func (c *ClassStats) Lookup(name string) *AttributeStats {
	for _, s := range c.Attributes {
		if s.AttributeName == name {
			return s
		}
	}
	return nil
}

// InformativeNumber counts attributes with an informative partition.
func (c *ClassStats) InformativeNumber() int {
	n := 0
	for _, s := range c.Attributes {
		if s.Informative() {
			n++
		}
	}
	return n
}

// SortedByLevel returns the attributes by decreasing level, ties by name.
// The receiver is not modified.
func (c *ClassStats) SortedByLevel() []*AttributeStats {
	out := append([]*AttributeStats(nil), c.Attributes...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level > out[j].Level
		}
		return out[i].AttributeName < out[j].AttributeName
	})
	return out
}
