// Package stats holds read-only univariate statistics: the optimal partition
// computed for one attribute (AttributeStats) and the collection of those
// partitions for a class (ClassStats) with its relevance ranking.
//
// The discretization and grouping routines that compute optimal partitions
// are consumed through the Partitioner capability. QuantilePartitioner is the
// baseline implementation: equal-frequency intervals and frequency-threshold
// groups from package quantile.
//
// Relevance (Level) is the normalised mutual information between the parts of
// the attribute and the target values, in [0, 1].
package stats
