package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// mapLimit applies fn to every input on at most limit goroutines, a negative
// limit meaning no bound. Outputs follow the order of in. The first error
// cancels the context the remaining calls see and is returned alone.
func mapLimit[S, T any](ctx context.Context, limit int, in []S, fn func(context.Context, S) (T, error)) ([]T, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	out := make([]T, len(in))

	for i, v := range in {
		g.Go(func() (err error) {
			out[i], err = fn(ctx, v)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// mapSettled is mapLimit without the cancellation: every input is tried
// and errs[i] holds the failure of in[i], if any.
func mapSettled[S, T any](ctx context.Context, limit int, in []S, fn func(context.Context, S) (T, error)) (out []T, errs []error) {
	var g errgroup.Group
	g.SetLimit(limit)

	out = make([]T, len(in))
	errs = make([]error, len(in))

	for i, v := range in {
		g.Go(func() error {
			out[i], errs[i] = fn(ctx, v)
			return nil
		})
	}

	_ = g.Wait()

	return out, errs
}
