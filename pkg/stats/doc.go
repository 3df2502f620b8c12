// Package stats provides streaming and batch descriptive statistics.
//
// The accumulator types (Mean, MeanVariance, Summary, GeoMean) consume
// observations one at a time in O(1) space and combine with Merge, so
// partial results computed independently — for example one accumulator
// per goroutine over a partitioned input — fold into a single result
// without revisiting the raw data. The batch helpers split slice input
// across independent accumulation lanes to reduce floating-point
// dependency stalls; the order of additions changes, the mathematical
// result does not. Median and median absolute deviation use the
// linear-time order-statistic partition from pkg/rank instead of a full
// sort.
//
// Undefined statistics are reported as NaN rather than as errors: the
// mean or median of no observations, and the variance of fewer than two.
// Non-finite observations propagate through the accumulators per IEEE
// arithmetic.
//
// Accumulators are plain value types with no internal locking. They are
// not safe for concurrent mutation.
package stats
