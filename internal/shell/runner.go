// Package shell runs the external commands greetcard delegates to:
// the image renderer, the clock, the quote generator and the downloader.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// Runner executes external commands.
type Runner interface {
	// Output runs the command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Run runs the command and discards its output.
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Output runs name with args and returns stdout.
//
// A command that cannot be started or exits nonzero is an error; for a
// nonzero exit the error carries the trimmed stderr.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := commandContext(ctx, name, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return out, commandError(name, err, stderr.String())
	}
	return out, nil
}

// Run runs name with args, discarding stdout.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := commandContext(ctx, name, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return commandError(name, err, stderr.String())
	}
	return nil
}

func commandError(name string, err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
	}
	return fmt.Errorf("%s: %w", name, err)
}
