package core

// InsertionSort sorts xs in place by inserting each element at the upper
// bound of the already-sorted prefix. It is stable and O(n^2) in the worst
// case; the drivers only reach for it on small ranges when the fallback is
// enabled.
func InsertionSort[T any](xs []T, less func(a, b T) bool) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		at := upperBound(xs[:i], v, less)
		copy(xs[at+1:i+1], xs[at:i])
		xs[at] = v
	}
}

// upperBound returns the first index in the sorted slice xs whose element v
// precedes, i.e. the insertion point that keeps equal elements in their
// original order.
func upperBound[T any](xs []T, v T, less func(a, b T) bool) int {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if less(v, xs[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
