// Package render turns an image file into terminal rows using an
// external image-to-ANSI program.
package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/handiism/greetcard/internal/shell"
)

// DefaultWidth is the image width, in terminal columns, passed to the renderer.
const DefaultWidth = 40

// Renderer runs `<command> -w <width> <path>`, catimg's syntax.
type Renderer struct {
	runner  shell.Runner
	command string
	width   int
}

// New creates a Renderer. A width below one means DefaultWidth.
func New(runner shell.Runner, command string, width int) *Renderer {
	if width < 1 {
		width = DefaultWidth
	}
	return &Renderer{runner: runner, command: command, width: width}
}

// Render returns the rendered rows of the image at path. The rows are
// returned exactly as printed, escape sequences included.
func (r *Renderer) Render(ctx context.Context, path string) ([]string, error) {
	out, err := r.runner.Output(ctx, r.command, "-w", strconv.Itoa(r.width), path)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", path, err)
	}
	return SplitLines(string(out)), nil
}

// SplitLines splits s on '\n', dropping a '\r' before each break. A
// final line break does not start another line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
