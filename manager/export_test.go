package manager_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/datagrid/grid"
	"github.com/katalvlaran/datagrid/manager"
)

func TestCopyDataGrid_RoundTrip(t *testing.T) {
	t.Parallel()
	source := sampleSource(t)
	source.SetGranularity(4)
	m := manager.New(source)
	require.NoError(t, m.Check())

	target := grid.New()
	m.CopyDataGrid(source, target)
	require.NoError(t, m.CheckDataGrid(target))
	if diff := cmp.Diff(source.String(), target.String()); diff != "" {
		t.Fatalf("copy differs from source (-source +target):\n%s", diff)
	}
	assert.Equal(t, 4, target.Granularity())
}

func TestExportDataGrid_MatchesSource(t *testing.T) {
	t.Parallel()
	source := sampleSource(t)
	m := manager.New(source)

	target := grid.New()
	m.ExportDataGrid(target)
	require.NoError(t, m.CheckDataGrid(target))
	assert.Empty(t, cmp.Diff(source.String(), target.String()))
}

func TestCopyInformativeDataGrid(t *testing.T) {
	t.Parallel()
	source := grid.New()
	source.SetTargetValues([]string{"a", "b"})
	x := source.AddAttribute("x", grid.Continuous)
	x.AddInterval(grid.MinLowerBound, 1)
	x.AddInterval(1, grid.MaxUpperBound)
	source.AddAttribute("flat", grid.Continuous).AddInterval(grid.MinLowerBound, grid.MaxUpperBound)
	s := source.AddAttribute("s", grid.Symbol)
	s.AddValueSet(grid.Value{Symbol: "u", Frequency: 3})
	s.AddValueSet(grid.Value{Symbol: "v", Frequency: 4}, grid.Value{Symbol: grid.StarValue})
	source.Cell(source.AddCell([]int{0, 0, 0})).SetFrequency(0, 3)
	source.Cell(source.AddCell([]int{1, 0, 1})).SetFrequency(1, 4)
	source.UpdateStatistics()
	require.NoError(t, source.Check())

	m := manager.New(source)
	target := grid.New()
	m.CopyInformativeDataGrid(source, target)
	assert.Equal(t, []string{"x", "s"}, names(target))
	assert.Equal(t, 2, target.CellNumber())
	assert.Equal(t, source.Frequency(), target.Frequency())
	require.NoError(t, m.CheckDataGrid(target))

	informative := grid.New()
	m.ExportInformativeAttributes(informative)
	assert.Equal(t, []string{"x", "s"}, names(informative))
}

func TestExportTerminalDataGrid(t *testing.T) {
	t.Parallel()
	source := sampleSource(t)
	m := manager.New(source)

	target := grid.New()
	m.ExportTerminalDataGrid(target)
	require.NoError(t, m.CheckDataGrid(target))
	assert.Equal(t, []int{1, 1, 1, 1, 1}, partNumbers(target))
	require.Equal(t, 1, target.CellNumber())
	assert.Equal(t, source.TargetFrequencies(), target.Cell(0).Frequencies())
	assert.Zero(t, target.InformativeAttributeNumber())

	// every source value keeps its frequency
	s1 := target.SearchAttribute("S1")
	assert.Equal(t, source.Frequency(), s1.Part(0).ValueFrequency())
}

func TestExportTerminalDataGrid_StarRemainder(t *testing.T) {
	t.Parallel()
	source := grid.New()
	source.SetTargetValues([]string{"a", "b"})
	x := source.AddAttribute("x", grid.Continuous)
	x.AddInterval(grid.MinLowerBound, 1)
	x.AddInterval(1, grid.MaxUpperBound)
	s := source.AddAttribute("s", grid.Symbol)
	// part 0 holds 5 instances, only 3 recorded on "u"
	s.AddValueSet(grid.Value{Symbol: "u", Frequency: 3})
	s.AddValueSet(grid.Value{Symbol: "v", Frequency: 4}, grid.Value{Symbol: grid.StarValue})
	source.Cell(source.AddCell([]int{0, 0})).SetFrequency(0, 5)
	source.Cell(source.AddCell([]int{1, 1})).SetFrequency(1, 4)
	source.UpdateStatistics()
	require.NoError(t, source.Check())

	m := manager.New(source)
	target := grid.New()
	m.ExportTerminalDataGrid(target)
	require.NoError(t, m.CheckDataGrid(target))

	part := target.SearchAttribute("s").Part(0)
	got := make(map[string]int, len(part.Values))
	for _, v := range part.Values {
		got[v.Symbol] = v.Frequency
	}
	assert.Equal(t, map[string]int{"u": 3, "v": 4, grid.StarValue: 2}, got)
	assert.Equal(t, source.Frequency(), part.ValueFrequency())
}

func TestExportSteps_FrequencyConservation(t *testing.T) {
	t.Parallel()
	source := sampleSource(t)
	m := manager.New(source)

	for _, name := range []string{"S2", "C1", "C3"} {
		target := grid.New()
		m.ExportOneAttribute(target, name)
		require.Equal(t, []string{name}, names(target))
		assert.Equal(t, source.TargetValues(), target.TargetValues())

		m.ExportParts(target)
		m.ExportCells(target)
		require.NoError(t, m.CheckDataGrid(target))
		assert.Equal(t, source.Frequency(), target.Frequency())
		assert.Equal(t, source.TargetFrequencies(), target.TargetFrequencies())

		src, dst := source.SearchAttribute(name), target.Attribute(0)
		for i := 0; i < src.PartNumber(); i++ {
			assert.Equal(t, src.Part(i).Frequency, dst.Part(i).Frequency)
		}
	}
}

func TestExportCells_Coarsening(t *testing.T) {
	t.Parallel()
	source := sampleSource(t)
	m := manager.New(source)

	target := grid.New()
	m.ExportOneAttribute(target, "C2")
	c2 := target.Attribute(0)
	c2.AddInterval(grid.MinLowerBound, 2.5)
	c2.AddInterval(2.5, grid.MaxUpperBound)
	m.ExportCells(target)
	require.NoError(t, m.CheckDataGrid(target))

	src := source.SearchAttribute("C2")
	want := src.Part(0).Frequency + src.Part(1).Frequency
	assert.Equal(t, want, c2.Part(0).Frequency)
	assert.Equal(t, source.Frequency(), c2.Part(0).Frequency+c2.Part(1).Frequency)
}

func TestExport_Preconditions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func(m *manager.Manager)
		want error
	}{
		{"attributes into non-empty target", func(m *manager.Manager) {
			target := grid.New()
			m.ExportAttributes(target)
			m.ExportAttributes(target)
		}, manager.ErrTargetNotEmpty},
		{"unknown attribute", func(m *manager.Manager) {
			m.ExportOneAttribute(grid.New(), "nope")
		}, manager.ErrUnknownAttribute},
		{"cells before parts", func(m *manager.Manager) {
			target := grid.New()
			m.ExportAttributes(target)
			m.ExportCells(target)
		}, manager.ErrMissingParts},
		{"parts twice", func(m *manager.Manager) {
			target := grid.New()
			m.ExportAttributes(target)
			m.ExportParts(target)
			m.ExportParts(target)
		}, manager.ErrPartsPresent},
		{"parts after cells", func(m *manager.Manager) {
			target := grid.New()
			m.ExportDataGrid(target)
			m.ExportParts(target)
		}, manager.ErrCellsPresent},
		{"incompatible parts", func(m *manager.Manager) {
			target := grid.New()
			m.ExportOneAttribute(target, "C1")
			target.Attribute(0).AddInterval(grid.MinLowerBound, 1)
			target.Attribute(0).AddInterval(1, grid.MaxUpperBound)
			m.ExportCells(target)
		}, manager.ErrIncompatiblePartition},
		{"overlapping parts", func(m *manager.Manager) {
			target := grid.New()
			m.ExportOneAttribute(target, "C1")
			target.Attribute(0).AddInterval(grid.MinLowerBound, 4.5)
			target.Attribute(0).AddInterval(2.5, grid.MaxUpperBound)
			m.ExportCells(target)
		}, manager.ErrIncompatiblePartition},
		{"duplicated value", func(m *manager.Manager) {
			target := grid.New()
			m.ExportOneAttribute(target, "S1")
			a := target.Attribute(0)
			a.AddValueSet(grid.Value{Symbol: "V1"}, grid.Value{Symbol: "V2"})
			a.AddValueSet(grid.Value{Symbol: "V2"}, grid.Value{Symbol: "V3"}, grid.Value{Symbol: "V4"},
				grid.Value{Symbol: "V5"}, grid.Value{Symbol: "V6"}, grid.Value{Symbol: grid.StarValue})
			m.ExportCells(target)
		}, manager.ErrIncompatiblePartition},
		{"nil source", func(*manager.Manager) { manager.New(nil) }, manager.ErrSourceNotSet},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := manager.New(sampleSource(t))
			err := capturePanic(func() { tc.fn(m) })
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
