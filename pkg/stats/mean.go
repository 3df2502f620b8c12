package stats

import "math"

// Mean is an O(1)-space accumulator for the arithmetic mean.
//
// The zero value is ready to use and represents zero observations.
// Updates use Welford's incremental form, which avoids the cancellation
// error a naive running sum accumulates on long inputs.
type Mean struct {
	mean float64
	n    uint64
}

// Put folds one observation into the accumulator.
func (m *Mean) Put(x float64) {
	m.n++
	m.mean += (x - m.mean) / float64(m.n)
}

// Merge folds every observation seen by other into m, as if each had
// been Put into m directly. A zero-count operand is an identity element:
// merging it changes nothing.
func (m *Mean) Merge(other Mean) {
	if other.n == 0 {
		return
	}

	if m.n == 0 {
		*m = other

		return
	}

	total := float64(m.n + other.n)
	m.mean = m.mean*(float64(m.n)/total) + other.mean*(float64(other.n)/total)
	m.n += other.n
}

// Mean returns the arithmetic mean, or NaN when no observations have
// been recorded.
func (m Mean) Mean() float64 {
	if m.n == 0 {
		return math.NaN()
	}

	return m.mean
}

// Sum returns the sum of all observations (mean times count).
func (m Mean) Sum() float64 {
	return m.mean * float64(m.n)
}

// Count returns the number of observations recorded.
func (m Mean) Count() uint64 {
	return m.n
}

// Reset restores the accumulator to its zero state.
func (m *Mean) Reset() {
	*m = Mean{}
}
