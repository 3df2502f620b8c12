package seq

import (
	"iter"

	"github.com/Sumatoshi-tech/streamstat/pkg/stats"
)

// ZScore returns a lazy view of src in which every value is standardized
// to (x - mean) / stddev, using the sample mean and standard deviation
// of src computed in one eager pass at construction. The view holds no
// copy of the data; every access recomputes the transform against the
// mean and standard deviation fixed at construction.
//
// The returned view implements exactly the capability interfaces src
// implements: Sized, Reversible, and Indexed are each mirrored only when
// src supports them.
func ZScore(src Sequence) Sequence {
	var acc stats.MeanVariance

	for v := range src.All() {
		acc.Put(v)
	}

	return ZScoreWith(src, acc.Mean(), acc.StdDev())
}

// ZScoreWith is ZScore with caller-supplied mean and standard deviation;
// construction is O(1). A zero or non-finite stddev is a caller contract
// violation and surfaces as IEEE infinities or NaNs on access.
func ZScoreWith(src Sequence, mean, stddev float64) Sequence {
	v := view{src: src, mean: mean, invStdDev: 1 / stddev}

	_, sized := src.(Sized)
	_, reversible := src.(Reversible)
	_, indexed := src.(Indexed)

	switch {
	case indexed && reversible:
		return &indexedReversibleView{indexedView: indexedView{sizedView: sizedView{view: v}}}
	case indexed:
		return &indexedView{sizedView: sizedView{view: v}}
	case sized && reversible:
		return &sizedReversibleView{sizedView: sizedView{view: v}}
	case sized:
		return &sizedView{view: v}
	case reversible:
		return &reversibleView{view: v}
	default:
		return &v
	}
}

// view is the forward-only core shared by every capability wrapper.
type view struct {
	src       Sequence
	mean      float64
	invStdDev float64
}

func (v *view) score(x float64) float64 {
	return (x - v.mean) * v.invStdDev
}

// All yields the standardized values front to back.
func (v *view) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for x := range v.src.All() {
			if !yield(v.score(x)) {
				return
			}
		}
	}
}

// backwardOf yields the standardized values back to front. The caller
// guarantees v.src is Reversible.
func backwardOf(v *view) iter.Seq[float64] {
	rev := v.src.(Reversible)

	return func(yield func(float64) bool) {
		for x := range rev.Backward() {
			if !yield(v.score(x)) {
				return
			}
		}
	}
}

type sizedView struct {
	view
}

// Len returns the wrapped sequence's length.
func (v *sizedView) Len() int {
	return v.src.(Sized).Len()
}

type reversibleView struct {
	view
}

// Backward yields the standardized values back to front.
func (v *reversibleView) Backward() iter.Seq[float64] {
	return backwardOf(&v.view)
}

type sizedReversibleView struct {
	sizedView
}

// Backward yields the standardized values back to front.
func (v *sizedReversibleView) Backward() iter.Seq[float64] {
	return backwardOf(&v.view)
}

type indexedView struct {
	sizedView
}

// At returns the standardized value at index i.
func (v *indexedView) At(i int) float64 {
	return v.score(v.src.(Indexed).At(i))
}

type indexedReversibleView struct {
	indexedView
}

// Backward yields the standardized values back to front.
func (v *indexedReversibleView) Backward() iter.Seq[float64] {
	return backwardOf(&v.view)
}
