package seq_test

import (
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/streamstat/pkg/seq"
	"github.com/Sumatoshi-tech/streamstat/pkg/stats"
)

// forwardOnly wraps a slice exposing nothing beyond forward traversal.
type forwardOnly []float64

func (f forwardOnly) All() iter.Seq[float64] {
	return seq.Slice(f).All()
}

func TestZScoreValues(t *testing.T) {
	t.Parallel()

	values := []float64{1, 2, 3, 4, 5}
	mean := stats.MeanOf(values)
	stddev := stats.StdDevOf(values)

	z := seq.ZScore(seq.Slice(values))

	indexed, ok := z.(seq.Indexed)
	require.True(t, ok)

	for i, v := range values {
		want := (v - mean) / stddev
		assert.InDelta(t, want, indexed.At(i), 1e-9, "index %d", i)
	}
}

func TestZScoreLenMirrorsUnderlying(t *testing.T) {
	t.Parallel()

	z := seq.ZScore(seq.Slice{1, 2, 3, 4, 5})

	sized, ok := z.(seq.Sized)
	require.True(t, ok)
	assert.Equal(t, 5, sized.Len())
}

func TestZScoreForwardTraversal(t *testing.T) {
	t.Parallel()

	values := []float64{2, 4, 6}
	z := seq.ZScoreWith(seq.Slice(values), 4, 2)

	assert.Equal(t, []float64{-1, 0, 1}, collect(z.All()))
}

func TestZScoreBackwardTraversal(t *testing.T) {
	t.Parallel()

	z := seq.ZScoreWith(seq.Slice{2, 4, 6}, 4, 2)

	reversible, ok := z.(seq.Reversible)
	require.True(t, ok)

	assert.Equal(t, []float64{1, 0, -1}, collect(reversible.Backward()))
}

func TestZScoreCapabilityMirroring(t *testing.T) {
	t.Parallel()

	t.Run("forward_only_source", func(t *testing.T) {
		t.Parallel()

		z := seq.ZScoreWith(forwardOnly{1, 2, 3}, 2, 1)

		_, sized := z.(seq.Sized)
		_, reversible := z.(seq.Reversible)
		_, indexed := z.(seq.Indexed)

		assert.False(t, sized)
		assert.False(t, reversible)
		assert.False(t, indexed)
	})

	t.Run("full_capability_source", func(t *testing.T) {
		t.Parallel()

		z := seq.ZScoreWith(seq.Slice{1, 2, 3}, 2, 1)

		_, sized := z.(seq.Sized)
		_, reversible := z.(seq.Reversible)
		_, indexed := z.(seq.Indexed)

		assert.True(t, sized)
		assert.True(t, reversible)
		assert.True(t, indexed)
	})
}

func TestZScoreEagerMatchesPrecomputed(t *testing.T) {
	t.Parallel()

	values := seq.Slice{3, 1, 4, 1, 5, 9, 2, 6}
	mean := stats.MeanOf(values)
	stddev := stats.StdDevOf(values)

	eager := collect(seq.ZScore(values).All())
	precomputed := collect(seq.ZScoreWith(values, mean, stddev).All())

	require.Len(t, precomputed, len(eager))

	for i := range eager {
		assert.InDelta(t, eager[i], precomputed[i], 1e-9)
	}
}

func TestZScoreLazyRecomputation(t *testing.T) {
	t.Parallel()

	// The view reads through to the source on every access rather than
	// caching transformed values.
	values := seq.Slice{1, 2, 3}
	z := seq.ZScoreWith(values, 0, 1)

	indexed, ok := z.(seq.Indexed)
	require.True(t, ok)

	assert.InDelta(t, 2.0, indexed.At(1), 0)

	values[1] = 10

	assert.InDelta(t, 10.0, indexed.At(1), 0)
}

func TestZScoreStandardNormalization(t *testing.T) {
	t.Parallel()

	// Standardized values of any sample have mean 0 and stddev 1.
	values := seq.Slice{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}

	var acc stats.MeanVariance

	for v := range seq.ZScore(values).All() {
		acc.Put(v)
	}

	assert.InDelta(t, 0.0, acc.Mean(), 1e-9)
	assert.InDelta(t, 1.0, acc.StdDev(), 1e-9)
	assert.False(t, math.IsNaN(acc.Variance()))
}
