package serial

import (
	"github.com/ib-77/qsort3/pkg/qsort/core"
	"github.com/ib-77/qsort3/pkg/qsort/pivot"
)

// Sort sorts xs in place under less, choosing pivots with pick. Ranges of at
// most fallbackSize elements are finished with the insertion fallback;
// fallbackSize <= 1 keeps the fallback off.
//
// Each partition step excludes the pivot from both sub-ranges, so the work
// strictly shrinks and the sort terminates for every finite slice. With an
// adversarial input and a poor pivot policy the running time degrades to
// O(n^2); that is a property of quicksort, not an error condition. The call
// recurses into the smaller side of every split and loops on the larger one,
// so native stack depth stays logarithmic even then.
func Sort[T any](xs []T, pick pivot.Picker, less func(a, b T) bool, fallbackSize int) {
	for len(xs) > 1 {
		if fallbackSize > 1 && len(xs) <= fallbackSize {
			core.InsertionSort(xs, less)
			return
		}

		boundary := core.Partition(xs, pick.Pick(len(xs)), less)
		left, right := xs[:boundary-1], xs[boundary:]

		if len(left) < len(right) {
			Sort(left, pick, less, fallbackSize)
			xs = right
		} else {
			Sort(right, pick, less, fallbackSize)
			xs = left
		}
	}
}
