// Package manager derives target data grids from one fixed source grid and
// checks that a target grid is a valid structural derivative of that source.
//
// A Manager borrows its source grid for its whole lifetime and never mutates
// it. Target grids are allocated by the caller (grid.New()) and populated in
// place; every step copies or aggregates source data, so no target keeps a
// reference into the source.
//
// Operation families:
//
//   - Copy / export: CopyDataGrid, CopyInformativeDataGrid, ExportDataGrid,
//     ExportTerminalDataGrid, then the composable steps ExportAttributes →
//     ExportParts → ExportCells.
//   - Random generation: ExportRandomAttributes, ExportRandomParts,
//     AddRandomAttributes, AddRandomParts over a seeded generator.
//   - Granularization: InitializeQuantileBuildersBeforeGranularization once,
//     then ExportGranularizedDataGrid at any level.
//   - Build from statistics: BuildDataGridFromUnivariateStats,
//     BuildDataGridFromClassStats, BuildDataGridFromUnivariateProduct.
//   - Frequency-table interchange: ExportFrequencyTableFromOneAttribute.
//   - Compatibility checks: CheckAttributes, CheckParts, CheckCells,
//     CheckGranularity, CheckTargetValues and their conjunction CheckDataGrid.
//
// Errors:
//
//   - Precondition violations (non-empty target, unknown attribute, cells
//     exported before parts, ...) panic with an error wrapping a sentinel.
//   - Data shortfalls (fewer distinct values than requested parts) are not
//     errors: the realised part count is returned and logged at debug level.
//   - Check* return nil or a *CheckError unwrapping to ErrAttributeMismatch,
//     ErrPartMismatch, ErrCellMismatch, ErrGranularityMismatch or
//     ErrTargetValueMismatch; CheckDataGrid aggregates them with multierr.
//
// Randomness:
//
// Every random draw comes from the manager's own source (WithSeed, WithRand);
// two managers built with the same seed replay the same sequence of results.
// A Manager is not safe for concurrent use.
package manager
