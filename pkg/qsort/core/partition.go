package core

// Partition rearranges xs around the element at pivotIdx and returns the
// boundary of the split.
//
// The pivot value is swapped to the front, the remaining elements are grouped
// into those that precede the pivot value under less followed by those that
// do not, and the pivot is then swapped to the last slot of the first group.
// On return, every element of xs[:boundary-1] satisfies less(elem, pivot),
// the pivot value sits at boundary-1, and no element of xs[boundary:] precedes
// it. Equal elements end up in the second group; relative order within the
// groups is not preserved.
//
// xs must be non-empty and pivotIdx must be a valid index into xs.
func Partition[T any](xs []T, pivotIdx int, less func(a, b T) bool) int {
	xs[0], xs[pivotIdx] = xs[pivotIdx], xs[0]
	pivotValue := xs[0]

	boundary := 1
	for i := 1; i < len(xs); i++ {
		if less(xs[i], pivotValue) {
			xs[i], xs[boundary] = xs[boundary], xs[i]
			boundary++
		}
	}

	xs[0], xs[boundary-1] = xs[boundary-1], xs[0]
	return boundary
}
