package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/datagrid/freqtable"
	"github.com/katalvlaran/datagrid/grid"
	"github.com/katalvlaran/datagrid/stats"
)

// pureTable has two target values perfectly separated between the first and
// the second half of its rows.
func pureTable(t *testing.T, rows int) *freqtable.Table {
	t.Helper()
	tab := freqtable.New(2)
	for i := 0; i < rows; i++ {
		freqs := []int{4, 0}
		if i >= rows/2 {
			freqs = []int{0, 4}
		}
		require.NoError(t, tab.AddRow("r", freqs))
	}
	return tab
}

func TestQuantilePartitioner_Discretize(t *testing.T) {
	t.Parallel()
	tab := pureTable(t, 8)
	out := stats.QuantilePartitioner{}.Discretize(tab, 1)
	require.Equal(t, 2, out.RowNumber())
	assert.Equal(t, []int{16, 0}, out.Rows[0].Frequencies)
	assert.Equal(t, []int{0, 16}, out.Rows[1].Frequencies)
	assert.Equal(t, 2, out.GranularizedValueNumber)
	assert.Equal(t, tab.TotalFrequency(), out.TotalFrequency())
}

func TestQuantilePartitioner_Group(t *testing.T) {
	t.Parallel()
	tab := freqtable.New(0)
	for _, f := range []int{9, 1, 1, 5, 1} {
		require.NoError(t, tab.AddRow("v", []int{f}))
	}
	groups, n, garbage := stats.QuantilePartitioner{}.Group(tab, 4)
	assert.Equal(t, []int{0, 2, 2, 1, 2}, groups)
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, garbage)

	s := stats.Evaluate("s", grid.Symbol, tab, 4, stats.QuantilePartitioner{})
	assert.Equal(t, 2, s.GarbageGroup)
	assert.Equal(t, 3, s.GarbageModalityNumber)
	assert.Equal(t, 2, s.GarbagePart())

	assert.Equal(t, grid.NoGarbagePart, (&stats.AttributeStats{Type: grid.Symbol}).GarbagePart())
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	s := stats.Evaluate("x", grid.Continuous, pureTable(t, 8), 1, stats.QuantilePartitioner{})
	assert.Equal(t, 2, s.PartNumber())
	assert.True(t, s.Informative())
	assert.InDelta(t, 1.0, s.Level, 1e-9)

	flat := freqtable.New(2)
	require.NoError(t, flat.AddRow("a", []int{2, 2}))
	require.NoError(t, flat.AddRow("b", []int{2, 2}))
	s = stats.Evaluate("y", grid.Symbol, flat, 3, stats.QuantilePartitioner{})
	assert.Equal(t, 2, s.PartNumber())
	assert.InDelta(t, 0.0, s.Level, 1e-9)
	assert.Equal(t, []int{0, 1}, s.Groups)
}

func TestClassStats(t *testing.T) {
	t.Parallel()
	one := freqtable.New(0)
	require.NoError(t, one.AddRow("all", []int{10}))
	cs := &stats.ClassStats{
		Attributes: []*stats.AttributeStats{
			{AttributeName: "b", Type: grid.Symbol, Level: 0.5, GroupNumber: 3},
			{AttributeName: "a", Type: grid.Symbol, Level: 0.5, GroupNumber: 2},
			{AttributeName: "c", Type: grid.Continuous, Level: 0.9, Intervals: one},
			{AttributeName: "d", Type: grid.Continuous, Level: 0.1},
		},
		Partitioner: stats.QuantilePartitioner{},
	}
	assert.Equal(t, 2, cs.InformativeNumber())
	assert.Nil(t, cs.Lookup("zz"))
	assert.Equal(t, "c", cs.Lookup("c").AttributeName)
	assert.False(t, cs.Lookup("c").Informative())
	assert.Zero(t, cs.Lookup("d").PartNumber())

	var names []string
	for _, s := range cs.SortedByLevel() {
		names = append(names, s.AttributeName)
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, names)
	assert.Equal(t, "b", cs.Attributes[0].AttributeName, "receiver order untouched")
}
