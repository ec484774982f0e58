package manager_test

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/katalvlaran/datagrid/grid"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// sampleSource is a supervised source grid: symbol attributes S1, S2 then
// continuous attributes C1..C3, six parts each, 400 instances.
func sampleSource(t testing.TB) *grid.Grid {
	t.Helper()
	return grid.NewSampleGrid(grid.SampleConfig{
		SymbolAttributeNumber:     2,
		ContinuousAttributeNumber: 3,
		PartNumber:                6,
		TargetValueNumber:         2,
		InstanceNumber:            400,
		Seed:                      3,
	})
}

// capturePanic returns the error value of a panic raised by fn.
func capturePanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

// partNumbers lists the part count of every attribute of g.
func partNumbers(g *grid.Grid) []int {
	out := make([]int, g.AttributeNumber())
	for i, a := range g.Attributes() {
		out[i] = a.PartNumber()
	}
	return out
}

func names(g *grid.Grid) []string {
	out := make([]string, g.AttributeNumber())
	for i, a := range g.Attributes() {
		out[i] = a.Name
	}
	return out
}
