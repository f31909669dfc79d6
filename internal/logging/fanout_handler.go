package logging

import (
	"context"
	"errors"
	"log/slog"
)

// fanoutHandler writes each record to every sink whose level admits it, so a
// run can log to the console and the log file at once.
type fanoutHandler struct {
	sinks []slog.Handler
}

func newFanoutHandler(sinks ...slog.Handler) slog.Handler {
	var live []slog.Handler
	for _, sink := range sinks {
		if sink != nil {
			live = append(live, sink)
		}
	}
	switch len(live) {
	case 0:
		return NoopHandler{}
	case 1:
		return live[0]
	}
	return &fanoutHandler{sinks: live}
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sink := range h.sinks {
		if sink.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle keeps writing to the remaining sinks when one fails; a full disk
// under the log file must not silence the console.
func (h *fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, sink := range h.sinks {
		if !sink.Enabled(ctx, record.Level) {
			continue
		}
		if err := sink.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.each(func(sink slog.Handler) slog.Handler { return sink.WithAttrs(attrs) })
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	return h.each(func(sink slog.Handler) slog.Handler { return sink.WithGroup(name) })
}

func (h *fanoutHandler) each(fn func(slog.Handler) slog.Handler) slog.Handler {
	next := make([]slog.Handler, len(h.sinks))
	for i, sink := range h.sinks {
		next[i] = fn(sink)
	}
	return &fanoutHandler{sinks: next}
}
