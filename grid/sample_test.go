package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/datagrid/grid"
)

func TestNewSampleGrid_Layout(t *testing.T) {
	t.Parallel()
	g := grid.NewSampleGrid(grid.SampleConfig{
		SymbolAttributeNumber:     1,
		ContinuousAttributeNumber: 2,
		PartNumber:                4,
		TargetValueNumber:         2,
		InstanceNumber:            50,
		Seed:                      3,
	})
	require.NoError(t, g.Check())

	names := make([]string, g.AttributeNumber())
	for i, a := range g.Attributes() {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"S1", "C1", "C2"}, names)
	assert.Equal(t, []string{"T1", "T2"}, g.TargetValues())
	assert.Equal(t, 50, g.Frequency())

	for _, a := range g.Attributes() {
		require.Equal(t, 4, a.PartNumber())
		total := 0
		for p := 0; p < a.PartNumber(); p++ {
			assert.Positive(t, a.Part(p).Frequency, "%s part %d", a.Name, p)
			total += a.Part(p).Frequency
		}
		assert.Equal(t, 50, total)
	}

	s := g.SearchAttribute("S1")
	assert.Equal(t, 3, s.DefaultPart())
	for p := 0; p < s.PartNumber(); p++ {
		assert.Equal(t, s.Part(p).Frequency, s.Part(p).ValueFrequency())
	}
}

// snapshot flattens the cells of a grid for comparison.
func snapshot(g *grid.Grid) map[string][]int {
	out := make(map[string][]int, g.CellNumber())
	for i := 0; i < g.CellNumber(); i++ {
		c := g.Cell(i)
		key := ""
		for a, p := range c.Parts() {
			key += g.Attribute(a).Part(p).Label(g.Attribute(a).Type) + "|"
		}
		out[key] = append([]int(nil), c.Frequencies()...)
	}
	return out
}

func TestNewSampleGrid_Reproducible(t *testing.T) {
	t.Parallel()
	cfg := grid.SampleConfig{SymbolAttributeNumber: 2, ContinuousAttributeNumber: 1, PartNumber: 3,
		TargetValueNumber: 2, InstanceNumber: 100, Seed: 11}
	a, b := grid.NewSampleGrid(cfg), grid.NewSampleGrid(cfg)
	if diff := cmp.Diff(snapshot(a), snapshot(b)); diff != "" {
		t.Fatalf("same seed produced different grids (-a +b):\n%s", diff)
	}

	cfg.Seed = 12
	c := grid.NewSampleGrid(cfg)
	assert.NotEqual(t, snapshot(a), snapshot(c))
}

func TestNewSampleGrid_InvalidSizesPanic(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { grid.NewSampleGrid(grid.SampleConfig{PartNumber: 0}) })
	assert.Panics(t, func() { grid.NewSampleGrid(grid.SampleConfig{PartNumber: 2, InstanceNumber: -1}) })
}
