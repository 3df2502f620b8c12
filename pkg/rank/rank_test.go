package rank_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/streamstat/pkg/rank"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []float64
		k    int
	}{
		{name: "single_element", data: []float64{42}, k: 0},
		{name: "two_ascending", data: []float64{1, 2}, k: 0},
		{name: "two_descending", data: []float64{2, 1}, k: 1},
		{name: "middle_rank", data: []float64{7, 1, 8, 2, 8, 1, 9}, k: 3},
		{name: "first_rank", data: []float64{5, 3, 9, 1, 7}, k: 0},
		{name: "last_rank", data: []float64{5, 3, 9, 1, 7}, k: 4},
		{name: "duplicates", data: []float64{4, 4, 4, 4, 4}, k: 2},
		{name: "sorted_input", data: []float64{1, 2, 3, 4, 5, 6, 7, 8}, k: 5},
		{name: "reverse_sorted", data: []float64{8, 7, 6, 5, 4, 3, 2, 1}, k: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := slices.Clone(tt.data)
			slices.Sort(want)

			got := slices.Clone(tt.data)
			rank.Select(got, tt.k)

			assert.InDelta(t, want[tt.k], got[tt.k], 0)
			assertPartitioned(t, got, tt.k)
		})
	}
}

func TestSelectInts(t *testing.T) {
	t.Parallel()

	data := []int{9, 2, 8, 4, 5, 9, 7, 1}
	rank.Select(data, 4)

	assert.Equal(t, 7, data[4])
}

func TestSelectRandomized(t *testing.T) {
	t.Parallel()

	const (
		trials  = 200
		maxSize = 300
	)

	rng := rand.New(rand.NewPCG(7, 13))

	for range trials {
		size := 1 + rng.IntN(maxSize)

		data := make([]float64, size)
		for i := range data {
			data[i] = rng.Float64() * 1000
		}

		k := rng.IntN(size)

		want := slices.Clone(data)
		slices.Sort(want)

		rank.Select(data, k)

		require.InDelta(t, want[k], data[k], 0)
		assertPartitioned(t, data, k)
	}
}

func TestSelectOutOfRangePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		rank.Select([]float64{1, 2, 3}, 3)
	})

	assert.Panics(t, func() {
		rank.Select([]float64{}, 0)
	})
}

// assertPartitioned verifies the Select postcondition: nothing before
// rank k exceeds data[k] and nothing after falls below it.
func assertPartitioned(t *testing.T, data []float64, k int) {
	t.Helper()

	for i := range k {
		require.LessOrEqual(t, data[i], data[k], "index %d", i)
	}

	for i := k + 1; i < len(data); i++ {
		require.GreaterOrEqual(t, data[i], data[k], "index %d", i)
	}
}
