// Package para provides the depth-bounded parallel quicksort driver.
//
// Each partition step below the depth limit forks the left sub-range into an
// errgroup worker with its own forked pivot picker while the calling
// goroutine sorts the right sub-range; the frame waits for its worker before
// returning. Past the limit the driver degrades to package serial, capping
// live workers at 2^limit.
//
// The depth limit, pivot strategy, and fallback size travel as context
// options, see package core.
package para
