// Package freqtable defines the frequency table: a flat list of rows, each
// row holding a part descriptor and a frequency vector over target values.
//
// It is the interchange format between one attribute of a data grid and the
// univariate discretization or grouping routines: a grid attribute is
// exported as one row per part, a routine answers with a coarser table (or a
// row-to-group index vector), and the grid manager turns that answer back
// into parts.
//
// Errors:
//
//   - ErrRowWidth: a row frequency vector does not match the table width.
//   - ErrNegativeFrequency: a row holds a negative count.
//   - ErrGroupIndex: a group index vector does not match the table rows.
package freqtable
