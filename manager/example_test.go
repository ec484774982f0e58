package manager_test

import (
	"fmt"

	"github.com/katalvlaran/datagrid/grid"
	"github.com/katalvlaran/datagrid/manager"
)

// ExampleManager_ExportRandomParts derives a random coarsening of a source
// grid and checks it against the source.
func ExampleManager_ExportRandomParts() {
	source := grid.NewSampleGrid(grid.SampleConfig{
		SymbolAttributeNumber:     1,
		ContinuousAttributeNumber: 2,
		PartNumber:                10,
		TargetValueNumber:         2,
		InstanceNumber:            200,
		Seed:                      1,
	})
	m := manager.New(source, manager.WithSeed(42))

	target := grid.New()
	m.ExportAttributes(target)
	m.ExportRandomParts(target, 3)
	m.ExportCells(target)

	for _, a := range target.Attributes() {
		fmt.Println(a.Name, a.Type, a.PartNumber())
	}
	fmt.Println("frequency:", target.Frequency())
	fmt.Println("compatible:", m.CheckDataGrid(target) == nil)
	// Output:
	// S1 Symbol 3
	// C1 Continuous 3
	// C2 Continuous 3
	// frequency: 200
	// compatible: true
}

// ExampleManager_ExportGranularizedDataGrid shows the realised interval
// count growing with the granularity.
func ExampleManager_ExportGranularizedDataGrid() {
	source := grid.NewSampleGrid(grid.SampleConfig{
		ContinuousAttributeNumber: 1,
		PartNumber:                16,
		InstanceNumber:            16,
	})
	m := manager.New(source)
	builders, maxParts := m.InitializeQuantileBuildersBeforeGranularization()
	fmt.Println("max parts:", maxParts)

	for g := 0; g <= 4; g++ {
		target := grid.New()
		m.ExportGranularizedDataGrid(target, g, builders)
		fmt.Println(g, target.Attribute(0).PartNumber(), m.CheckDataGrid(target) == nil)
	}
	// Output:
	// max parts: [16]
	// 0 1 true
	// 1 2 true
	// 2 4 true
	// 3 8 true
	// 4 16 true
}
