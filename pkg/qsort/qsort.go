package qsort

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/ib-77/qsort3/pkg/qsort/core"
	"github.com/ib-77/qsort3/pkg/qsort/para"
	"github.com/ib-77/qsort3/pkg/qsort/pivot"
	"github.com/ib-77/qsort3/pkg/qsort/serial"
)

// Less reports whether a strictly precedes b. It must be a strict weak
// ordering: irreflexive, transitive, and consistent for the duration of one
// sort. Supplying anything else is a contract violation; the sort will not
// detect it and the resulting order is undefined.
type Less[T any] func(a, b T) bool

// ErrInvalidRange reports out-of-bounds or inverted bounds passed to
// SortRange.
var ErrInvalidRange = errors.New("invalid range")

// Ordered is the natural strict weak ordering of an ordered type.
func Ordered[T constraints.Ordered]() Less[T] {
	return func(a, b T) bool { return a < b }
}

// Sort sorts xs in place in ascending order.
func Sort[T constraints.Ordered](xs []T) {
	SortFunc(xs, Ordered[T]())
}

// SortFunc sorts xs in place under less. The sort is not stable: equal
// elements may be reordered.
func SortFunc[T any](xs []T, less Less[T]) {
	serial.Sort(xs, pivot.NewRandom(), less, core.DefaultFallbackSize)
}

// SortWith sorts xs in place under less, honoring the pivot strategy and
// fallback-size options carried by ctx (see package core).
func SortWith[T any](ctx context.Context, xs []T, less Less[T]) {
	serial.Sort(xs, pickerFrom(ctx), less,
		core.GetFallbackSize(ctx, core.DefaultFallbackSize))
}

// SortRange sorts the half-open view xs[first:last] in place under less.
// It fails with ErrInvalidRange when the bounds are inverted or fall outside
// xs; the slice is left untouched in that case.
func SortRange[T any](xs []T, first, last int, less Less[T]) error {
	if first < 0 || last < first || last > len(xs) {
		return fmt.Errorf("%w: [%d, %d) over %d elements", ErrInvalidRange, first, last, len(xs))
	}
	serial.Sort(xs[first:last], pivot.NewRandom(), less, core.DefaultFallbackSize)
	return nil
}

// ParallelSort sorts xs in place in ascending order using concurrent
// workers. The final ordering is identical to Sort; only the execution
// profile differs.
func ParallelSort[T constraints.Ordered](ctx context.Context, xs []T) error {
	return ParallelSortFunc(ctx, xs, Ordered[T]())
}

// ParallelSortFunc sorts xs in place under less using concurrent workers,
// honoring the depth-limit, pivot, and fallback options carried by ctx. A
// non-nil error means the sort did not complete; xs may be partially sorted.
func ParallelSortFunc[T any](ctx context.Context, xs []T, less Less[T]) error {
	return para.Sort(ctx, xs, pickerFrom(ctx), less)
}

// IsSorted reports whether xs is in ascending order.
func IsSorted[T constraints.Ordered](xs []T) bool {
	return IsSortedFunc(xs, Ordered[T]())
}

// IsSortedFunc reports whether xs is non-decreasing under less.
func IsSortedFunc[T any](xs []T, less Less[T]) bool {
	for i := len(xs) - 1; i > 0; i-- {
		if less(xs[i], xs[i-1]) {
			return false
		}
	}
	return true
}

func pickerFrom(ctx context.Context) pivot.Picker {
	if core.GetPivotStrategy(ctx, core.RandomPivot) == core.MidpointPivot {
		return pivot.Midpoint()
	}
	return pivot.NewRandom()
}
