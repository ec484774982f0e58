// Package datagrid is an in-memory engine for data grids: multidimensional
// partitions of attribute domains into a cross-product of parts, annotated
// with per-cell target-value frequencies.
//
// What is a data grid?
//
//	Every attribute is partitioned into parts: contiguous intervals ]a, b]
//	for continuous attributes, disjoint value sets for symbol attributes.
//	A cell is one tuple of parts, one per attribute, holding the count of
//	instances per target value. Only non-empty cells are stored.
//
// The engine derives target grids from one fixed source grid (copies,
// subsets, random coarsenings and refinements, granularized partitions,
// cross-products of univariate partitions) and verifies that any target is
// a valid structural derivative of the source.
//
// Packages:
//
//	grid/     : Grid, Attribute, Part, Cell; statistics, integrity check, sample grids
//	freqtable/: frequency tables, the interchange format of univariate routines
//	quantile/ : interval and group builders, granularity arithmetic
//	stats/    : univariate statistics, relevance ranking, Partitioner capability
//	manager/  : the data grid manager: export, random, granularize, build, check
//
// Quick start:
//
//	source := grid.NewSampleGrid(grid.SampleConfig{
//		ContinuousAttributeNumber: 2, PartNumber: 10,
//		TargetValueNumber: 2, InstanceNumber: 500, Seed: 1,
//	})
//	m := manager.New(source, manager.WithSeed(42))
//	target := grid.New()
//	m.ExportAttributes(target)
//	m.ExportRandomParts(target, 4)
//	m.ExportCells(target)
//	if err := m.CheckDataGrid(target); err != nil {
//		// handle incompatibility
//	}
//
// Everything is single-threaded and deterministic given a seed.
package datagrid
