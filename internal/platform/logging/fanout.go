package logging

import (
	"context"
	"errors"
	"log/slog"
	"slices"
)

// fanout hands each record to every handler enabled for its level, e.g.
// the terminal handler and the rolling JSON file.
type fanout []slog.Handler

// Fanout combines handlers into one. Handle errors from all of them are
// joined.
func Fanout(handlers ...slog.Handler) slog.Handler {
	return fanout(slices.Clone(handlers))
}

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(f, func(h slog.Handler) bool {
		return h.Enabled(ctx, level)
	})
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler passes records by value
	var errs []error

	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}

	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f fanout) WithGroup(name string) slog.Handler {
	if name == "" {
		return f
	}

	return f.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f fanout) each(fn func(slog.Handler) slog.Handler) fanout {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = fn(h)
	}

	return out
}
