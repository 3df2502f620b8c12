// Package seq defines minimal float64 sequence capabilities and lazy
// transforming views over them.
//
// A Sequence is anything traversable front to back. The optional Sized,
// Reversible, and Indexed interfaces advertise a known length, reverse
// traversal, and O(1) random access. Views constructed by this package
// (see ZScore) mirror exactly the capabilities of the sequence they
// wrap: a view over an Indexed sequence is itself Indexed, a view over a
// forward-only sequence is forward-only.
package seq

import "iter"

// Sequence is a forward-traversable sequence of float64 values. All may
// be called more than once; each call restarts the traversal.
type Sequence interface {
	All() iter.Seq[float64]
}

// Sized is a Sequence with a known length.
type Sized interface {
	Sequence
	Len() int
}

// Reversible is a Sequence that can also be traversed back to front.
type Reversible interface {
	Sequence
	Backward() iter.Seq[float64]
}

// Indexed is a Sized sequence with O(1) random access. At panics when i
// is out of [0, Len()).
type Indexed interface {
	Sized
	At(i int) float64
}

// Slice adapts a []float64 to every capability in this package.
type Slice []float64

// All yields the elements front to back.
func (s Slice) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (s Slice) Backward() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// Len returns the number of elements.
func (s Slice) Len() int {
	return len(s)
}

// At returns the element at index i.
func (s Slice) At(i int) float64 {
	return s[i]
}
