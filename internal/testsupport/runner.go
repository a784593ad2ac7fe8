// Package testsupport holds fakes shared by greetcard package tests.
package testsupport

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Call records one command invocation.
type Call struct {
	Name string
	Args []string
}

// String renders the call like a shell command line.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is the canned result of a command.
type Response struct {
	Stdout string
	Err    error

	// Do runs before the response is returned, e.g. to create a downloaded file.
	Do func(args []string) error
}

// FakeRunner answers commands from a table keyed by command name.
// Unknown commands fail like a binary missing from PATH.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []Call
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string]Response)}
}

// On registers the response for name and returns the runner for chaining.
func (f *FakeRunner) On(name string, resp Response) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[name] = resp
	return f
}

// Output implements shell.Runner.
func (f *FakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Name: name, Args: append([]string(nil), args...)})
	resp, ok := f.responses[name]
	f.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%s: %w", name, &exec.Error{Name: name, Err: exec.ErrNotFound})
	}
	if resp.Do != nil {
		if err := resp.Do(args); err != nil {
			return nil, err
		}
	}
	if resp.Err != nil {
		return []byte(resp.Stdout), resp.Err
	}
	return []byte(resp.Stdout), nil
}

// Run implements shell.Runner.
func (f *FakeRunner) Run(ctx context.Context, name string, args ...string) error {
	_, err := f.Output(ctx, name, args...)
	return err
}

// Calls returns every invocation so far, in order.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Called reports whether name was invoked.
func (f *FakeRunner) Called(name string) bool {
	for _, c := range f.Calls() {
		if c.Name == name {
			return true
		}
	}
	return false
}
