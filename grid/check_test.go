package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/datagrid/grid"
)

func TestCheck_Violations(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		build func() *grid.Grid
	}{
		{"attribute without part", func() *grid.Grid {
			g := grid.New()
			g.AddAttribute("x", grid.Continuous)
			return g
		}},
		{"first interval not open", func() *grid.Grid {
			g := grid.New()
			g.AddAttribute("x", grid.Continuous).AddInterval(0, grid.MaxUpperBound)
			return g
		}},
		{"last interval not open", func() *grid.Grid {
			g := grid.New()
			g.AddAttribute("x", grid.Continuous).AddInterval(grid.MinLowerBound, 3)
			return g
		}},
		{"gap between intervals", func() *grid.Grid {
			g := grid.New()
			a := g.AddAttribute("x", grid.Continuous)
			a.AddInterval(grid.MinLowerBound, 1)
			a.AddInterval(2, grid.MaxUpperBound)
			return g
		}},
		{"shared value", func() *grid.Grid {
			g := grid.New()
			a := g.AddAttribute("s", grid.Symbol)
			a.AddValueSet(grid.Value{Symbol: "a"})
			a.AddValueSet(grid.Value{Symbol: "a"}, grid.Value{Symbol: grid.StarValue})
			return g
		}},
		{"no default part", func() *grid.Grid {
			g := grid.New()
			g.AddAttribute("s", grid.Symbol).AddValueSet(grid.Value{Symbol: "a"})
			return g
		}},
		{"empty value set", func() *grid.Grid {
			g := grid.New()
			a := g.AddAttribute("s", grid.Symbol)
			a.AddValueSet(grid.Value{Symbol: grid.StarValue})
			a.AddValueSet()
			return g
		}},
		{"negative frequency", func() *grid.Grid {
			g := grid.NewSampleGrid(grid.SampleConfig{ContinuousAttributeNumber: 1, PartNumber: 2, InstanceNumber: 4})
			g.Cell(0).AddFrequency(0, -5)
			return g
		}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.build().Check()
			require.Error(t, err)
			assert.ErrorIs(t, err, grid.ErrInconsistent)
		})
	}
}

func TestCheck_SampleGridIsValid(t *testing.T) {
	t.Parallel()
	g := grid.NewSampleGrid(grid.SampleConfig{
		SymbolAttributeNumber:     2,
		ContinuousAttributeNumber: 3,
		PartNumber:                5,
		TargetValueNumber:         3,
		InstanceNumber:            200,
		Seed:                      7,
	})
	require.NoError(t, g.Check())
}

func TestAttributeCheck_Overlap(t *testing.T) {
	t.Parallel()
	g := grid.New()
	x := g.AddAttribute("x", grid.Continuous)
	x.AddInterval(grid.MinLowerBound, 4.5)
	x.AddInterval(2.5, grid.MaxUpperBound)
	assert.ErrorIs(t, x.Check(), grid.ErrInconsistent)

	s := g.AddAttribute("s", grid.Symbol)
	s.AddValueSet(grid.Value{Symbol: "a"}, grid.Value{Symbol: "b"})
	s.AddValueSet(grid.Value{Symbol: "b"}, grid.Value{Symbol: grid.StarValue})
	assert.ErrorIs(t, s.Check(), grid.ErrInconsistent)

	ok := g.AddAttribute("ok", grid.Symbol)
	ok.AddValueSet(grid.Value{Symbol: "a"})
	ok.AddValueSet(grid.Value{Symbol: "b"}, grid.Value{Symbol: grid.StarValue})
	assert.NoError(t, ok.Check())
}
