package stats

import (
	"fmt"
	"math"
)

// Summary is an O(1)-space accumulator for the first four central
// moments plus the running minimum and maximum. It derives mean,
// variance, standard deviation, skewness, and excess kurtosis, and
// merges with the pairwise combination formulas of Pébay (2008).
//
// The zero value is ready to use and represents zero observations.
type Summary struct {
	mean float64
	m2   float64
	m3   float64
	m4   float64
	min  float64
	max  float64
	n    uint64
}

// Put folds one observation into the accumulator. The higher moments are
// updated before the mean: each moment's increment is a function of the
// deviation from the pre-update mean, so the order M4, M3, M2, mean is
// load-bearing.
func (s *Summary) Put(x float64) {
	if s.n == 0 {
		s.min, s.max = x, x
	} else {
		if x < s.min {
			s.min = x
		}

		if x > s.max {
			s.max = x
		}
	}

	before := float64(s.n)
	s.n++
	n := float64(s.n)

	delta := x - s.mean
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term := delta * deltaN * before

	s.m4 += term*deltaN2*(n*n-3*n+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
	s.m3 += term*deltaN*(n-2) - 3*deltaN*s.m2
	s.m2 += term
	s.mean += deltaN
}

// Merge folds every observation seen by other into s, as if each had
// been Put into s directly. A zero-count operand is an identity element:
// merging it changes nothing.
func (s *Summary) Merge(other Summary) {
	if other.n == 0 {
		return
	}

	if s.n == 0 {
		*s = other

		return
	}

	na, nb := float64(s.n), float64(other.n)
	n := na + nb

	delta := other.mean - s.mean
	deltaN := delta / n

	m4 := s.m4 + other.m4 +
		delta*deltaN*deltaN*deltaN*na*nb*(na*na-na*nb+nb*nb) +
		6*deltaN*deltaN*(na*na*other.m2+nb*nb*s.m2) +
		4*deltaN*(na*other.m3-nb*s.m3)

	m3 := s.m3 + other.m3 +
		delta*deltaN*deltaN*na*nb*(na-nb) +
		3*deltaN*(na*other.m2-nb*s.m2)

	m2 := s.m2 + other.m2 + delta*deltaN*na*nb

	s.mean = s.mean*(na/n) + other.mean*(nb/n)
	s.m2, s.m3, s.m4 = m2, m3, m4
	s.n += other.n

	if other.min < s.min {
		s.min = other.min
	}

	if other.max > s.max {
		s.max = other.max
	}
}

// Mean returns the arithmetic mean, or NaN when no observations have
// been recorded.
func (s Summary) Mean() float64 {
	if s.n == 0 {
		return math.NaN()
	}

	return s.mean
}

// Sum returns the sum of all observations (mean times count).
func (s Summary) Sum() float64 {
	return s.mean * float64(s.n)
}

// Count returns the number of observations recorded.
func (s Summary) Count() uint64 {
	return s.n
}

// Variance returns the Bessel-corrected sample variance, or NaN with
// fewer than two observations.
func (s Summary) Variance() float64 {
	return s.ToMeanVariance().Variance()
}

// StdDev returns the sample standard deviation.
func (s Summary) StdDev() float64 {
	return s.ToMeanVariance().StdDev()
}

// Min returns the smallest observation, or NaN when no observations have
// been recorded.
func (s Summary) Min() float64 {
	if s.n == 0 {
		return math.NaN()
	}

	return s.min
}

// Max returns the largest observation, or NaN when no observations have
// been recorded.
func (s Summary) Max() float64 {
	if s.n == 0 {
		return math.NaN()
	}

	return s.max
}

// Skewness returns the population skewness M3·sqrt(n)/sqrt(M2)³. The
// cube of sqrt(M2) loses less precision than raising M2 to the power
// 1.5 directly. With fewer than two observations, or when every
// observation is equal (M2 = 0), the division yields NaN or an infinity;
// that propagation is intentional and not guarded.
func (s Summary) Skewness() float64 {
	root := math.Sqrt(s.m2)

	return s.m3 * math.Sqrt(float64(s.n)) / (root * root * root)
}

// Kurtosis returns the excess kurtosis M4·n/M2² − 3, so a normal
// distribution scores 0. The same M2 = 0 propagation note as Skewness
// applies.
func (s Summary) Kurtosis() float64 {
	return s.m4 / s.m2 * float64(s.n) / s.m2 - 3
}

// ToMeanVariance projects the accumulator onto a MeanVariance, dropping
// the higher moments and the extrema.
func (s Summary) ToMeanVariance() MeanVariance {
	return MeanVariance{mean: s.mean, m2: s.m2, n: s.n}
}

// ToMean projects the accumulator onto a plain Mean.
func (s Summary) ToMean() Mean {
	return Mean{mean: s.mean, n: s.n}
}

// Reset restores the accumulator to its zero state.
func (s *Summary) Reset() {
	*s = Summary{}
}

// String returns a one-line dump of the derived statistics, suitable for
// logging.
func (s Summary) String() string {
	return fmt.Sprintf("count=%d min=%g max=%g mean=%g stddev=%g skewness=%g kurtosis=%g",
		s.n, s.Min(), s.Max(), s.Mean(), s.StdDev(), s.Skewness(), s.Kurtosis())
}
