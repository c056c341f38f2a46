// Package core contains the partition primitives shared by the sorting
// drivers: the in-place partition step, the small-range insertion fallback,
// and sort configuration via context. It does not drive recursion; instead it
// provides the scaffolding for packages serial and para to sort ranges with
// controlled behavior.
package core
