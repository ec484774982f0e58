package grid_test

import (
	"fmt"

	"github.com/katalvlaran/datagrid/grid"
)

// ExampleGrid builds a small supervised grid by hand and prints its statistics.
func ExampleGrid() {
	g := grid.New()
	g.SetTargetValues([]string{"no", "yes"})
	age := g.AddAttribute("age", grid.Continuous)
	age.AddInterval(grid.MinLowerBound, 30)
	age.AddInterval(30, grid.MaxUpperBound)

	g.Cell(g.AddCell([]int{0})).SetFrequency(0, 8)
	c := g.AddCell([]int{1})
	g.Cell(c).SetFrequency(0, 2)
	g.Cell(c).SetFrequency(1, 6)
	g.UpdateStatistics()

	fmt.Println("frequency:", g.Frequency())
	fmt.Println("informative:", g.InformativeAttributeNumber())
	for p := 0; p < age.PartNumber(); p++ {
		fmt.Println(age.Part(p).Label(age.Type), age.Part(p).Frequency)
	}
	fmt.Println("valid:", g.Check() == nil)

	// Output:
	// frequency: 16
	// informative: 1
	// ]-inf;30] 8
	// ]30;+inf] 8
	// valid: true
}
