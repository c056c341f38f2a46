// Package qsort provides a generic in-place quicksort over slices, with a
// sequential driver and a depth-bounded parallel one.
//
// Key operations:
// - Sort/SortFunc: sequential sort with the natural or a supplied ordering
// - SortWith: sequential sort honoring context options
// - SortRange: sort a bounded half-open view, validating the bounds
// - ParallelSort/ParallelSortFunc: concurrent sort, same final ordering
// - IsSorted/IsSortedFunc: ordering checks
//
// Pivot strategy, parallel depth limit, and the small-range insertion
// fallback are configured through context options, see package core. The
// sort is not stable; equal elements may be reordered.
package qsort
