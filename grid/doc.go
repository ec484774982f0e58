// Package grid defines the data grid: a multidimensional partition of the
// attribute domains of a dataset, annotated with per-cell class frequencies.
//
// What:
//
//   - Grid owns an ordered list of Attributes, the target values and a sparse
//     set of Cells.
//   - Attribute owns a contiguous arena of Parts: intervals ]Lower, Upper] for
//     continuous attributes, value sets for symbol attributes.
//   - Cell is keyed by one part index per attribute and holds a frequency
//     vector (one count per target value, or a single count when unsupervised).
//
// Ownership:
//
//   - Parts and cells are referenced by index, never by pointer. A *Part or
//     *Cell returned by an accessor is only valid until the next structural
//     change of its owner (AddInterval, AddValueSet, AddCell, Sort...).
//
// Building a grid:
//
//	g := grid.New()
//	g.SetTargetValues([]string{"no", "yes"})
//	age := g.AddAttribute("age", grid.Continuous)
//	age.AddInterval(grid.MinLowerBound, 30)
//	age.AddInterval(30, grid.MaxUpperBound)
//	c := g.LookupOrAddCell([]int{1})
//	g.Cell(c).AddFrequency(1, 12)
//	g.UpdateStatistics()
//
// Complexity:
//
//   - AddCell / LookupCell: O(k) with k the number of attributes.
//   - UpdateStatistics, Check: O(n·k) with n the number of cells.
//   - Entropies: O(n·t) with t the number of target values.
//
// Errors:
//
//   - Construction misuse (type mismatch, duplicate attribute, invalid or
//     duplicate cell, structural change while cells exist) panics with an
//     error wrapping one of the sentinels in errors.go.
//   - Check returns an error wrapping ErrInconsistent.
package grid
