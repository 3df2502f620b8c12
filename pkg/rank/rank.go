// Package rank provides in-place selection of order statistics.
//
// Select rearranges a slice so that the element at a target rank is the
// one a full sort would place there (quickselect, Hoare 1961), with
// everything before the rank no larger and everything after no smaller.
// Expected running time is linear in the slice length and no memory is
// allocated. It is the partition primitive behind the median routines in
// pkg/stats.
package rank

import "cmp"

// Select partially sorts data around rank k: after the call, data[k]
// holds the k-th smallest element, every element of data[:k] is <=
// data[k], and every element of data[k+1:] is >= data[k]. Expected time
// is O(len(data)).
//
// k outside [0, len(data)) is a contract violation and panics.
func Select[T cmp.Ordered](data []T, k int) {
	_ = data[k]

	lo, hi := 0, len(data)-1

	for lo < hi {
		mid := partition(data, lo, hi)

		if k <= mid {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
}

// partition splits data[lo..hi] around a median-of-three pivot using
// Hoare's scheme. It returns an index mid in [lo, hi) such that every
// element of data[lo..mid] is <= every element of data[mid+1..hi].
func partition[T cmp.Ordered](data []T, lo, hi int) int {
	pivotToFront(data, lo, hi)

	pivot := data[lo]
	i, j := lo-1, hi+1

	for {
		for {
			i++

			if data[i] >= pivot {
				break
			}
		}

		for {
			j--

			if data[j] <= pivot {
				break
			}
		}

		if i >= j {
			return j
		}

		data[i], data[j] = data[j], data[i]
	}
}

// pivotToFront moves the median of data[lo], data[mid], data[hi] to
// data[lo]. A median-of-three pivot defuses the quadratic behavior of a
// fixed pivot on sorted and reverse-sorted input.
func pivotToFront[T cmp.Ordered](data []T, lo, hi int) {
	mid := lo + (hi-lo)/2

	if data[mid] < data[lo] {
		data[mid], data[lo] = data[lo], data[mid]
	}

	if data[hi] < data[lo] {
		data[hi], data[lo] = data[lo], data[hi]
	}

	if data[hi] < data[mid] {
		data[hi], data[mid] = data[mid], data[hi]
	}

	data[lo], data[mid] = data[mid], data[lo]
}
