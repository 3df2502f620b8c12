package stats

import (
	"math"

	"github.com/Sumatoshi-tech/streamstat/pkg/rank"
)

// Median returns the median of values without modifying them; the
// partition runs on a scratch copy. Returns NaN for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	scratch := make([]float64, len(values))
	copy(scratch, values)

	return MedianInPlace(scratch)
}

// MedianInPlace returns the median of values, reordering them around the
// middle rank in the process. Callers that cannot tolerate reordering
// should use Median, which copies. Returns NaN for an empty slice.
func MedianInPlace(values []float64) float64 {
	n := len(values)

	switch n {
	case 0:
		return math.NaN()
	case 1:
		return values[0]
	}

	if n%2 == 1 {
		rank.Select(values, n/2)

		return values[n/2]
	}

	lowerRank := n/2 - 1
	rank.Select(values, lowerRank)
	lower := values[lowerRank]

	// The upper median is the minimum of the upper half, which a single
	// scan finds more cheaply than a second partition.
	upper := values[lowerRank+1]

	for _, v := range values[lowerRank+2:] {
		if v < upper {
			upper = v
		}
	}

	return (lower + upper) / 2
}

// MedianAbsDev returns the median of values together with the median of
// absolute deviations from it. Both are NaN for an empty slice. No
// distribution-dependent consistency correction is applied to the
// deviation term; scale it externally if one is needed.
func MedianAbsDev(values []float64) (median, mad float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}

	median = Median(values)

	devs := make([]float64, len(values))
	for i, v := range values {
		devs[i] = math.Abs(v - median)
	}

	return median, MedianInPlace(devs)
}
