// SPDX-License-Identifier: MIT
// Package: stats
//
// partitioner.go: quantile-backed Partitioner and the Evaluate helper.

package stats

import (
	"math"

	"github.com/katalvlaran/datagrid/freqtable"
	"github.com/katalvlaran/datagrid/grid"
	"github.com/katalvlaran/datagrid/quantile"
)

// QuantilePartitioner partitions with the quantile builders.
type QuantilePartitioner struct{}

// Discretize implements Partitioner with equal-frequency intervals.
func (QuantilePartitioner) Discretize(table *freqtable.Table, granularity int) *freqtable.Table {
	p := quantile.NewIntervalBuilder(table.RowFrequencies()).Quantiles(granularity)
	out, err := table.Merge(p.Groups, p.Count)
	if err != nil {
		// groups come from the table itself
		panic(err)
	}
	out.GranularizedValueNumber = quantile.PartileNumber(granularity, table.TotalFrequency())
	return out
}

// Group implements Partitioner with frequency-threshold groups. The catch-all
// group, when it merges several rows, is reported as garbage.
func (QuantilePartitioner) Group(table *freqtable.Table, granularity int) ([]int, int, int) {
	p := quantile.NewGroupBuilder(table.RowFrequencies()).Quantiles(granularity)
	garbage := grid.NoGarbagePart
	if p.CatchAll != quantile.NoCatchAll && len(p.Members(p.CatchAll)) > 1 {
		garbage = p.CatchAll
	}
	return p.Groups, p.Count, garbage
}

// Evaluate computes the optimal partition of one attribute from its finest
// frequency table and fills Level from the resulting partition.
func Evaluate(name string, t grid.AttributeType, table *freqtable.Table, granularity int, p Partitioner) *AttributeStats {
	s := &AttributeStats{AttributeName: name, Type: t, Granularity: granularity}
	var parts *freqtable.Table
	if t == grid.Continuous {
		s.Intervals = p.Discretize(table, granularity)
		parts = s.Intervals
	} else {
		s.Groups, s.GroupNumber, s.GarbageGroup = p.Group(table, granularity)
		if s.GarbageGroup != grid.NoGarbagePart {
			for _, g := range s.Groups {
				if g == s.GarbageGroup {
					s.GarbageModalityNumber++
				}
			}
		}
		merged, err := table.Merge(s.Groups, s.GroupNumber)
		if err != nil {
			panic(err)
		}
		parts = merged
	}
	s.Level = normalizedMutualInformation(parts)
	return s
}

// normalizedMutualInformation is I(parts; target) / H(target), 0 when the
// target is constant or the table unsupervised.
func normalizedMutualInformation(t *freqtable.Table) float64 {
	width := t.Width()
	if width < 2 || t.RowNumber() < 2 {
		return 0
	}
	rows := make([]float64, t.RowNumber())
	cols := make([]float64, width)
	joint := make([]float64, 0, t.RowNumber()*width)
	for i, r := range t.Rows {
		for k, f := range r.Frequencies {
			rows[i] += float64(f)
			cols[k] += float64(f)
			joint = append(joint, float64(f))
		}
	}
	hTarget := grid.Entropy(cols)
	if hTarget == 0 {
		return 0
	}
	mi := grid.Entropy(rows) + hTarget - grid.Entropy(joint)
	return math.Max(0, math.Min(1, mi/hTarget))
}
