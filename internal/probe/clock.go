package probe

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/handiism/greetcard/internal/logging"
	"github.com/handiism/greetcard/internal/shell"
)

// Clock reports the current time as printed by the system clock service.
type Clock struct {
	runner  shell.Runner
	command string
	logger  *slog.Logger
}

// NewClock creates a Clock that runs `<command> show -P TimeUSec`.
func NewClock(runner shell.Runner, command string, logger *slog.Logger) *Clock {
	return &Clock{runner: runner, command: command, logger: logging.OrNop(logger)}
}

// Now returns the command's entire standard output, verbatim.
//
// The trailing newline timedatectl prints is kept; trimming happens
// only when the line is composed.
func (c *Clock) Now(ctx context.Context) (string, bool) {
	out, err := c.runner.Output(ctx, c.command, "show", "-P", "TimeUSec")
	if err != nil {
		c.logger.Debug("clock probe skipped", "command", c.command, "error", err)
		return "", false
	}
	if !utf8.Valid(out) {
		c.logger.Debug("clock probe skipped", "command", c.command, "error", "output is not UTF-8")
		return "", false
	}
	return string(out), true
}
