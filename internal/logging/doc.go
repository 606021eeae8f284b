// Package logging assembles structured slog loggers for inputrelay.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests and wiring code that cannot
// fail. Structured logs are diagnostic only: the relay's user-facing status
// lines are written by the relay console, not through these loggers.
package logging
