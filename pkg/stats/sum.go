package stats

import "iter"

// Number constrains the element and result types of Sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ilpLanes is the number of independent accumulation lanes used by the
// batch helpers on slice input. Independent lanes break the loop-carried
// dependency between successive floating-point additions, letting the
// CPU overlap them. The lane split changes only the order of additions,
// not the mathematical result.
const ilpLanes = 8

// Sum returns the total of values accumulated in an Out-typed total. Out
// may be specified wider than In to avoid overflow or precision loss on
// large reductions, e.g. summing many uint8 samples into a uint64.
func Sum[Out, In Number](values []In) Out {
	var lanes [ilpLanes]Out

	full := len(values) - len(values)%ilpLanes

	for i := 0; i < full; i += ilpLanes {
		for l := range ilpLanes {
			lanes[l] += Out(values[i+l])
		}
	}

	var total Out

	for l := range ilpLanes {
		total += lanes[l]
	}

	for _, v := range values[full:] {
		total += Out(v)
	}

	return total
}

// SumSeq returns the total of every value produced by the sequence,
// accumulated sequentially.
func SumSeq(values iter.Seq[float64]) float64 {
	var total float64

	for v := range values {
		total += v
	}

	return total
}
