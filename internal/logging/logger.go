// Package logging builds the slog logger used for greetcard diagnostics.
//
// The greeter is cosmetic and silent by default: skipped probes and art
// fallbacks are only reported when debug logging is enabled.
package logging

import (
	"io"
	"log/slog"
)

// New returns a discarding logger unless debug is set, in which case
// records at debug level and above are written to w as text.
func New(w io.Writer, debug bool) *slog.Logger {
	if !debug || w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Nop returns a logger that drops every record.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrNop returns logger, or a discarding logger when logger is nil.
func OrNop(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Nop()
	}
	return logger
}
