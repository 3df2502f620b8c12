package stats_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/streamstat/pkg/stats"
)

func TestBatchSeqVariantsMatchSliceVariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(41, 42))
	values := randomValues(rng, 257)

	assert.InDelta(t, stats.MeanOf(values), stats.MeanSeq(slices.Values(values)), 1e-9)
	assert.InDelta(t, stats.VarianceOf(values), stats.VarianceSeq(slices.Values(values)), 1e-6)
	assert.InDelta(t, stats.StdDevOf(values), stats.StdDevSeq(slices.Values(values)), 1e-6)

	batched := stats.Summarize(values)
	streamed := stats.SummarizeSeq(slices.Values(values))

	assert.InDelta(t, batched.Skewness(), streamed.Skewness(), 1e-6)
	assert.InDelta(t, batched.Kurtosis(), streamed.Kurtosis(), 1e-6)
	assert.Equal(t, batched.Count(), streamed.Count())
}

func TestBatchEmptySequences(t *testing.T) {
	t.Parallel()

	empty := slices.Values([]float64{})

	assert.True(t, math.IsNaN(stats.MeanSeq(empty)))
	assert.True(t, math.IsNaN(stats.VarianceSeq(slices.Values([]float64{}))))
	assert.True(t, math.IsNaN(stats.GeoMeanSeq(slices.Values([]float64{}))))
	assert.InDelta(t, 0.0, stats.SumSeq(slices.Values([]float64{})), 0)
}

func TestBatchMeanFixture(t *testing.T) {
	t.Parallel()

	values := []float64{1, 2, 5, 10, 17}

	assert.InDelta(t, 7.0, stats.MeanOf(values), floatTol)

	acc := stats.Summarize(values)

	assert.InDelta(t, 35.0, acc.Sum(), floatTol)
}
