// Package logging assembles structured slog loggers and formatting helpers
// used across orgdir.
//
// It owns the console and JSON handlers, level and output plumbing, and
// context helpers that tag every line of a run with its run ID. A no-op
// logger is provided for tests and for wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components
// emit data with the same shape as the rest of the tool.
package logging
