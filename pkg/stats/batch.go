package stats

import "iter"

// accumulate feeds every element of values into an accumulator of type
// A, splitting the bulk of the slice across ilpLanes independent lanes.
// The lanes are combined with Merge and any remainder elements are
// folded in one at a time, so the result matches a plain sequential loop
// up to floating-point rounding order.
func accumulate[A any, PA interface {
	*A
	Put(float64)
	Merge(A)
}](values []float64) A {
	var lanes [ilpLanes]A

	full := len(values) - len(values)%ilpLanes

	for i := 0; i < full; i += ilpLanes {
		for l := range ilpLanes {
			PA(&lanes[l]).Put(values[i+l])
		}
	}

	acc := lanes[0]

	for l := 1; l < ilpLanes; l++ {
		PA(&acc).Merge(lanes[l])
	}

	for _, v := range values[full:] {
		PA(&acc).Put(v)
	}

	return acc
}

// MeanOf returns the arithmetic mean of values, or NaN for an empty
// slice.
func MeanOf(values []float64) float64 {
	acc := accumulate[Mean](values)

	return acc.Mean()
}

// VarianceOf returns the sample variance of values, or NaN for fewer
// than two elements.
func VarianceOf(values []float64) float64 {
	acc := accumulate[MeanVariance](values)

	return acc.Variance()
}

// StdDevOf returns the sample standard deviation of values, or NaN for
// fewer than two elements.
func StdDevOf(values []float64) float64 {
	acc := accumulate[MeanVariance](values)

	return acc.StdDev()
}

// SkewnessOf returns the population skewness of values. See
// [Summary.Skewness] for the degenerate-input behavior.
func SkewnessOf(values []float64) float64 {
	return Summarize(values).Skewness()
}

// KurtosisOf returns the excess kurtosis of values. See
// [Summary.Kurtosis] for the degenerate-input behavior.
func KurtosisOf(values []float64) float64 {
	return Summarize(values).Kurtosis()
}

// Summarize returns a Summary accumulator loaded with every element of
// values.
func Summarize(values []float64) Summary {
	return accumulate[Summary](values)
}

// GeoMeanOf returns the geometric mean of values, or NaN for an empty
// slice. The logarithm cost dominates, so no lane splitting is applied.
func GeoMeanOf(values []float64) float64 {
	var acc GeoMean

	for _, v := range values {
		acc.Put(v)
	}

	return acc.GeoMean()
}

// MeanSeq returns the arithmetic mean of the sequence, or NaN for an
// empty sequence.
func MeanSeq(values iter.Seq[float64]) float64 {
	var acc Mean

	for v := range values {
		acc.Put(v)
	}

	return acc.Mean()
}

// VarianceSeq returns the sample variance of the sequence, or NaN for
// fewer than two elements.
func VarianceSeq(values iter.Seq[float64]) float64 {
	var acc MeanVariance

	for v := range values {
		acc.Put(v)
	}

	return acc.Variance()
}

// StdDevSeq returns the sample standard deviation of the sequence, or
// NaN for fewer than two elements.
func StdDevSeq(values iter.Seq[float64]) float64 {
	var acc MeanVariance

	for v := range values {
		acc.Put(v)
	}

	return acc.StdDev()
}

// SummarizeSeq returns a Summary accumulator loaded with every value of
// the sequence.
func SummarizeSeq(values iter.Seq[float64]) Summary {
	var acc Summary

	for v := range values {
		acc.Put(v)
	}

	return acc
}

// GeoMeanSeq returns the geometric mean of the sequence, or NaN for an
// empty sequence.
func GeoMeanSeq(values iter.Seq[float64]) float64 {
	var acc GeoMean

	for v := range values {
		acc.Put(v)
	}

	return acc.GeoMean()
}
