package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for organize run identifiers.
	FieldRunID = "run_id"
	// FieldTarget is the standardized structured logging key for the organized directory.
	FieldTarget = "target"
)

type contextKey int

const (
	runIDKey contextKey = iota
	targetKey
)

// WithRunID returns a context carrying the organize run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the organize run identifier, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok && id != ""
}

// WithTarget returns a context carrying the directory being organized.
func WithTarget(ctx context.Context, target string) context.Context {
	if target == "" {
		return ctx
	}
	return context.WithValue(ctx, targetKey, target)
}

// TargetFromContext extracts the organized directory, if present.
func TargetFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	target, ok := ctx.Value(targetKey).(string)
	return target, ok && target != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if target, ok := TargetFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldTarget, target))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}

func attrsToArgs(attrs []slog.Attr) []any {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return args
}
