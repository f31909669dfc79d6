// Package logging assembles structured slog loggers and formatting helpers used
// across extsort.
//
// It owns the console and JSON handlers, routes output to the configured sinks
// (console, file, none), and exposes context-aware helpers so organizer code can
// automatically tag log lines with the run ID and target directory. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every log line shares
// the same "<timestamp> [<LEVEL>] <message>" shape and routing guarantees.
package logging
