package freqtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/datagrid/freqtable"
)

func sampleTable(t *testing.T) *freqtable.Table {
	t.Helper()
	tab := freqtable.New(2)
	require.NoError(t, tab.AddRow("a", []int{3, 1}))
	require.NoError(t, tab.AddRow("b", []int{0, 2}))
	require.NoError(t, tab.AddRow("c", []int{5, 0}))
	return tab
}

func TestTable_Totals(t *testing.T) {
	t.Parallel()
	tab := sampleTable(t)
	assert.Equal(t, 2, tab.Width())
	assert.Equal(t, 3, tab.RowNumber())
	assert.Equal(t, 11, tab.TotalFrequency())
	assert.Equal(t, []int{4, 2, 5}, tab.RowFrequencies())
	assert.NoError(t, tab.Check())
}

func TestTable_UnsupervisedWidth(t *testing.T) {
	t.Parallel()
	tab := freqtable.New(0)
	assert.Equal(t, 1, tab.Width())
	assert.NoError(t, tab.AddRow("x", []int{4}))
}

func TestTable_AddRowErrors(t *testing.T) {
	t.Parallel()
	tab := freqtable.New(2)
	assert.ErrorIs(t, tab.AddRow("x", []int{1}), freqtable.ErrRowWidth)
	assert.ErrorIs(t, tab.AddRow("x", []int{1, -1}), freqtable.ErrNegativeFrequency)
	assert.Zero(t, tab.RowNumber())

	tab.Rows = append(tab.Rows, freqtable.Row{Frequencies: []int{1}})
	assert.ErrorIs(t, tab.Check(), freqtable.ErrRowWidth)
}

func TestTable_Merge(t *testing.T) {
	t.Parallel()
	tab := sampleTable(t)

	merged, err := tab.Merge([]int{0, 0, 1}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, merged.RowNumber())
	assert.Equal(t, []int{3, 3}, merged.Rows[0].Frequencies)
	assert.Equal(t, "a+b", merged.Rows[0].Label)
	assert.Equal(t, []int{5, 0}, merged.Rows[1].Frequencies)
	assert.Equal(t, tab.TotalFrequency(), merged.TotalFrequency())

	_, err = tab.Merge([]int{0, 1}, 2)
	assert.ErrorIs(t, err, freqtable.ErrGroupIndex)
	_, err = tab.Merge([]int{0, 1, 2}, 2)
	assert.ErrorIs(t, err, freqtable.ErrGroupIndex)
}
