// Package async holds small concurrency helpers.
package async

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// WithMinDelay runs fn concurrently with a timer and returns fn's result only
// once both have finished, so a fast fn still takes at least d. Cancelling
// ctx releases the wait immediately: a caller that has lost interest (the
// selection changed, the request went away) does not sit out the timer.
//
// An error from fn cancels the timer and is returned as-is; callers that want
// the full delay even on failure should absorb errors inside fn.
func WithMinDelay[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var out T
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	g.Go(func() error {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	if err := g.Wait(); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
