// Package info builds the status lines shown on the right of the card.
//
// Each line comes from its own source. A source that fails is skipped
// without a trace, so the column only ever shrinks.
package info

import (
	"context"
	"log/slog"
	"strings"

	"github.com/handiism/greetcard/internal/logging"
	"github.com/handiism/greetcard/internal/player"
	"github.com/handiism/greetcard/internal/probe"
)

// TimeSource reports the current time as text.
type TimeSource interface {
	Now(ctx context.Context) (string, bool)
}

// QuoteSource produces a short quote, already normalized.
type QuoteSource interface {
	Quote(ctx context.Context) (string, bool)
}

// Builder assembles the info lines.
type Builder struct {
	env    probe.Env
	clock  TimeSource
	tracks player.TrackSource
	quotes QuoteSource
	styles Styles
	logger *slog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(env probe.Env, clock TimeSource, tracks player.TrackSource, quotes QuoteSource, styles Styles, logger *slog.Logger) *Builder {
	return &Builder{
		env:    env,
		clock:  clock,
		tracks: tracks,
		quotes: quotes,
		styles: styles,
		logger: logging.OrNop(logger),
	}
}

// Build returns the info lines in display order:
//
//	Hello, {USER}
//	It is {time}
//	{title} - {album}     or     "{quote}"
//	(blank)
//	{TERM} | {shell}
func (b *Builder) Build(ctx context.Context) []string {
	var lines []string

	if user, ok := b.env.Lookup("USER"); ok {
		lines = append(lines, "Hello, "+user)
	} else {
		b.logger.Debug("info line skipped", "line", "greeting")
	}

	if now, ok := b.clock.Now(ctx); ok {
		lines = append(lines, "It is "+now)
	}

	if line, ok := b.trackLine(ctx); ok {
		lines = append(lines, line)
	} else if quote, ok := b.quotes.Quote(ctx); ok {
		lines = append(lines, b.styles.Quote.Render(`"`+quote+`"`))
	}

	if tail, ok := b.sessionLine(); ok {
		lines = append(lines, "", tail)
	}

	return lines
}

func (b *Builder) trackLine(ctx context.Context) (string, bool) {
	track, ok := b.tracks.CurrentTrack(ctx)
	if !ok || !track.Playing() {
		return "", false
	}
	return b.styles.Title.Render(track.Title) + " - " + b.styles.Album.Render(track.Album), true
}

func (b *Builder) sessionLine() (string, bool) {
	var parts []string
	if term, ok := b.env.Lookup("TERM"); ok {
		parts = append(parts, b.styles.Detail.Render(term))
	}
	if shell, ok := b.env.Lookup("SHELL"); ok {
		parts = append(parts, b.styles.Detail.Render(ShellName(shell)))
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " | "), true
}

// ShellName returns the last '/'-separated component of a SHELL value.
func ShellName(shell string) string {
	return shell[strings.LastIndex(shell, "/")+1:]
}
