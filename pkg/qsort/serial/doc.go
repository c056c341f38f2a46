// Package serial provides the sequential quicksort driver. It applies the
// core partition step recursively on a single goroutine and is also what the
// parallel driver in package para degrades to past its depth limit.
package serial
