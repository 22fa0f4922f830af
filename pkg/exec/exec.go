// Package exec runs the external measurement tool as a child process whose
// lifetime is bound to the plugin's.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait blocks on inherited pipes after the child
// has been killed by context cancellation.
const waitDelay = 5 * time.Second

// Runner abstracts command execution for testability.
type Runner interface {
	// LookPath finds the executable in PATH.
	LookPath(file string) (string, error)
	// Output runs the command, returning its standard output and exit code.
	// A non-zero exit status is not an error; only failing to start or
	// wait on the process is.
	Output(ctx context.Context, name string, args ...string) (stdout string, exitCode int, err error)
}

// RealRunner is the production implementation.
type RealRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Output executes the command with standard error discarded.
func (r *RealRunner) Output(ctx context.Context, name string, args ...string) (string, int, error) {
	// #nosec G204 -- the command name is a constant; arguments come from validated flags.
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = nil
	cmd.WaitDelay = waitDelay
	linkLifetime(cmd)

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return outBuf.String(), exitErr.ExitCode(), nil
	}
	if err != nil {
		return outBuf.String(), -1, err
	}
	return outBuf.String(), 0, nil
}

// MockRunner is a test double for Runner. Nil funcs resolve any name under
// /usr/bin and run successfully with no output.
type MockRunner struct {
	LookPathFunc func(file string) (string, error)
	OutputFunc   func(ctx context.Context, name string, args ...string) (string, int, error)
}

// LookPath calls the mock function.
func (m *MockRunner) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

// Output calls the mock function.
func (m *MockRunner) Output(ctx context.Context, name string, args ...string) (string, int, error) {
	if m.OutputFunc != nil {
		return m.OutputFunc(ctx, name, args...)
	}
	return "", 0, nil
}
