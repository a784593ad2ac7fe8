package probe

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/handiism/greetcard/internal/logging"
	"github.com/handiism/greetcard/internal/shell"
)

// QuoteMaxLength is the length limit passed to the quote generator.
const QuoteMaxLength = "60"

// Quotes fetches a short quote from an external generator.
type Quotes struct {
	runner  shell.Runner
	command string
	logger  *slog.Logger
}

// NewQuotes creates a quote source that runs `<command> -as -n 60`.
func NewQuotes(runner shell.Runner, command string, logger *slog.Logger) *Quotes {
	return &Quotes{runner: runner, command: command, logger: logging.OrNop(logger)}
}

// Quote returns the generator's output with whitespace normalized.
func (q *Quotes) Quote(ctx context.Context) (string, bool) {
	out, err := q.runner.Output(ctx, q.command, "-as", "-n", QuoteMaxLength)
	if err != nil {
		q.logger.Debug("quote probe skipped", "command", q.command, "error", err)
		return "", false
	}
	if !utf8.Valid(out) {
		q.logger.Debug("quote probe skipped", "command", q.command, "error", "output is not UTF-8")
		return "", false
	}
	return NormalizeQuote(string(out)), true
}

// NormalizeQuote turns multi-line generator output into a single line.
//
// Newlines become spaces, runs of spaces collapse to one, and surrounding
// whitespace is trimmed. Tabs and other characters are kept.
//
// Example:
//
//	NormalizeQuote("A fool  and\nhis money\n") // "A fool and his money"
func NormalizeQuote(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
