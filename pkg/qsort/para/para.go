package para

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/qsort3/pkg/qsort/core"
	"github.com/ib-77/qsort3/pkg/qsort/pivot"
	"github.com/ib-77/qsort3/pkg/qsort/serial"
)

// Sort sorts xs in place under less, forking one worker per partition step
// while recursion depth stays below the ctx depth-limit option, then
// degrading to the serial driver. The two sides of a split never overlap, so
// workers touch disjoint sub-slices and the slice itself needs no locking.
//
// Every fork is joined before its frame returns. When a worker fails, either
// because the context is canceled or a comparator panics, the first error
// propagates from the top-level call tagged with the job identity; xs may be
// left partially sorted, but the call never reports success in that case.
func Sort[T any](ctx context.Context, xs []T, pick pivot.Picker, less func(a, b T) bool) error {
	job := NewJob()
	limit := core.GetDepthLimit(ctx, core.DefaultDepthLimit)
	fallback := core.GetFallbackSize(ctx, core.DefaultFallbackSize)

	err := guard(func() error {
		return sortAtDepth(ctx, xs, 0, limit, fallback, pick, less)
	})
	return job.Wrap(err)
}

func sortAtDepth[T any](ctx context.Context, xs []T, depth, limit, fallback int,
	pick pivot.Picker, less func(a, b T) bool) error {

	if len(xs) < 2 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	boundary := core.Partition(xs, pick.Pick(len(xs)), less)
	left, right := xs[:boundary-1], xs[boundary:]

	if depth >= limit {
		serial.Sort(left, pick, less, fallback)
		serial.Sort(right, pick, less, fallback)
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	forked := pick.Fork()
	g.Go(func() error {
		return guard(func() error {
			return sortAtDepth(gctx, left, depth+1, limit, fallback, forked, less)
		})
	})

	err := guard(func() error {
		return sortAtDepth(gctx, right, depth+1, limit, fallback, pick, less)
	})

	// join before returning, even when the inline side already failed
	if werr := g.Wait(); err == nil {
		err = werr
	}
	return err
}

// guard converts a panic escaping fn into an error, so a failing worker
// reports to the top-level call instead of killing the process.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sort worker: %v", r)
		}
	}()
	return fn()
}
