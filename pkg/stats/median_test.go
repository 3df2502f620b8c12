package stats_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/streamstat/pkg/stats"
)

func TestMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "single", values: []float64{42}, expected: 42},
		{name: "two", values: []float64{1, 3}, expected: 2},
		{name: "odd", values: []float64{7, 1, 8, 2, 8, 1, 9}, expected: 7},
		{name: "even", values: []float64{7, 1, 8, 2, 8, 1, 9, 2, 8, 4, 5, 9}, expected: 6},
		{name: "sorted", values: []float64{1, 2, 3, 4, 5}, expected: 3},
		{name: "duplicates", values: []float64{5, 5, 5, 5}, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, stats.Median(tt.values), floatTol)
		})
	}
}

func TestMedianEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(stats.Median(nil)))
	assert.True(t, math.IsNaN(stats.MedianInPlace(nil)))
}

func TestMedianDoesNotMutate(t *testing.T) {
	t.Parallel()

	values := []float64{9, 2, 8, 4, 5}
	original := slices.Clone(values)

	stats.Median(values)

	assert.Equal(t, original, values)
}

func TestMedianAbsDev(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		values     []float64
		wantMedian float64
		wantMAD    float64
	}{
		{
			name:       "dozen",
			values:     []float64{7, 1, 8, 2, 8, 1, 9, 2, 8, 4, 5, 9},
			wantMedian: 6,
			wantMAD:    2.5,
		},
		{
			name:       "with_outlier",
			values:     []float64{8, 6, 7, 5, 3, 0, 999},
			wantMedian: 6,
			wantMAD:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			median, mad := stats.MedianAbsDev(tt.values)

			assert.InDelta(t, tt.wantMedian, median, floatTol)
			assert.InDelta(t, tt.wantMAD, mad, floatTol)
		})
	}
}

func TestMedianAbsDevEmpty(t *testing.T) {
	t.Parallel()

	median, mad := stats.MedianAbsDev(nil)

	assert.True(t, math.IsNaN(median))
	assert.True(t, math.IsNaN(mad))
}

func TestMedianRandomizedSubranges(t *testing.T) {
	t.Parallel()

	const (
		trials = 200
		size   = 500
	)

	rng := rand.New(rand.NewPCG(21, 22))

	values := make([]float64, size)
	for i := range values {
		values[i] = rng.Float64() * 100
	}

	for range trials {
		lo := rng.IntN(size)
		hi := lo + 1 + rng.IntN(size-lo)

		sub := values[lo:hi]

		require.InDelta(t, sortMedian(sub), stats.Median(sub), 1e-9,
			"subrange [%d:%d]", lo, hi)
	}
}

// sortMedian is the reference implementation: sort a copy, average the
// middle element(s).
func sortMedian(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}
