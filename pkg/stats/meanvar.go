package stats

import "math"

// MeanVariance is an O(1)-space accumulator for the arithmetic mean and
// the sample variance, using Welford's one-pass update and the parallel
// combination rule of Chan et al. for Merge.
//
// The zero value is ready to use and represents zero observations.
type MeanVariance struct {
	mean float64
	m2   float64
	n    uint64
}

// Put folds one observation into the accumulator.
func (mv *MeanVariance) Put(x float64) {
	before := float64(mv.n)
	mv.n++

	delta := x - mv.mean
	deltaN := delta / float64(mv.n)

	mv.mean += deltaN
	mv.m2 += before * deltaN * delta
}

// Merge folds every observation seen by other into mv, as if each had
// been Put into mv directly. A zero-count operand is an identity
// element: merging it changes nothing.
func (mv *MeanVariance) Merge(other MeanVariance) {
	if other.n == 0 {
		return
	}

	if mv.n == 0 {
		*mv = other

		return
	}

	na, nb := float64(mv.n), float64(other.n)
	total := na + nb
	delta := other.mean - mv.mean

	mv.mean = mv.mean*(na/total) + other.mean*(nb/total)
	mv.m2 += other.m2 + (na/total)*nb*delta*delta
	mv.n += other.n
}

// Mean returns the arithmetic mean, or NaN when no observations have
// been recorded.
func (mv MeanVariance) Mean() float64 {
	if mv.n == 0 {
		return math.NaN()
	}

	return mv.mean
}

// Sum returns the sum of all observations (mean times count).
func (mv MeanVariance) Sum() float64 {
	return mv.mean * float64(mv.n)
}

// Count returns the number of observations recorded.
func (mv MeanVariance) Count() uint64 {
	return mv.n
}

// Variance returns the Bessel-corrected sample variance M2/(n−1), or NaN
// with fewer than two observations.
func (mv MeanVariance) Variance() float64 {
	if mv.n < 2 {
		return math.NaN()
	}

	return mv.m2 / float64(mv.n-1)
}

// StdDev returns the sample standard deviation.
func (mv MeanVariance) StdDev() float64 {
	return math.Sqrt(mv.Variance())
}

// ToMean projects the accumulator onto a plain Mean, dropping the
// variance state.
func (mv MeanVariance) ToMean() Mean {
	return Mean{mean: mv.mean, n: mv.n}
}

// Reset restores the accumulator to its zero state.
func (mv *MeanVariance) Reset() {
	*mv = MeanVariance{}
}
