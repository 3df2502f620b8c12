package stats

import "math"

// GeoMean is an O(1)-space accumulator for the geometric mean. It feeds
// a Mean accumulator with log2-transformed observations; the geometric
// mean is 2 raised to the arithmetic mean of the logs. Non-positive
// observations produce non-finite logarithms which propagate per IEEE
// arithmetic.
//
// The zero value is ready to use and represents zero observations.
type GeoMean struct {
	logs Mean
}

// Put folds one observation into the accumulator.
func (g *GeoMean) Put(x float64) {
	g.logs.Put(math.Log2(x))
}

// Merge folds every observation seen by other into g. A zero-count
// operand is an identity element.
func (g *GeoMean) Merge(other GeoMean) {
	g.logs.Merge(other.logs)
}

// GeoMean returns the geometric mean, or NaN when no observations have
// been recorded.
func (g GeoMean) GeoMean() float64 {
	return math.Exp2(g.logs.Mean())
}

// Count returns the number of observations recorded.
func (g GeoMean) Count() uint64 {
	return g.logs.Count()
}

// Reset restores the accumulator to its zero state.
func (g *GeoMean) Reset() {
	*g = GeoMean{}
}
