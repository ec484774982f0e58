// Package quantile builds bounded-resolution partitions of one attribute at a
// given granularity level.
//
// A builder is constructed once from the finest partition of an attribute
// (its "units": the source parts in source order, with their frequencies)
// and then answers Quantiles(g) for any granularity g. The answer maps every
// unit to an output part, so a caller can merge its own parts without the
// builder knowing anything about intervals or value sets.
//
//   - IntervalBuilder (continuous attributes): equal-frequency cuts at the
//     instance ranks ⌊i·N/q⌋, snapped to unit ends. Empty parts never appear.
//   - GroupBuilder (symbol attributes): frequent units stay singleton groups,
//     the others are collapsed into one catch-all group.
//
// Granularity arithmetic:
//
//	PartileNumber(g, N) = min(2^g, N)
//	MaxGranularity(N)   = ⌈log2 N⌉
//
// For the interval builder the cut ranks at level g are a subset of the cut
// ranks at level g+1, so the realised part count never decreases with g.
//
// Builders are immutable after construction and safe for concurrent reads.
package quantile
