// Package executil runs external commands for the submission and sign-up
// collaborators.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const maxStderrLen = 500

// limitedWriter caps writes to a bytes.Buffer at a maximum byte count.
// Bytes beyond the limit are silently discarded.
type limitedWriter struct {
	buf *bytes.Buffer
	n   int64
	max int64
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.n >= w.max {
		return len(p), nil
	}
	remaining := w.max - w.n
	origLen := len(p)
	if int64(origLen) > remaining {
		p = p[:remaining]
	}
	n, err := w.buf.Write(p)
	w.n += int64(n)
	if err != nil {
		return n, err
	}
	return origLen, nil
}

// CommandError reports a command that could not be started or exited
// unsuccessfully. Stderr holds the trimmed, capped standard error output.
type CommandError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v", e.Stderr, e.Err)
	}
	return fmt.Sprintf("exec %s: %v", e.Cmd, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Executor runs external commands.
type Executor interface {
	// Run executes a command and returns its combined output.
	Run(ctx context.Context, cmd string, args ...string) ([]byte, error)
	// RunInput executes a command with stdin attached and returns its stdout.
	// Failures are reported as *CommandError carrying stderr.
	RunInput(ctx context.Context, stdin io.Reader, cmd string, args ...string) ([]byte, error)
}

// RealExecutor calls actual commands.
type RealExecutor struct{}

var _ Executor = (*RealExecutor)(nil)

// Run executes a command and returns its combined output.
func (e *RealExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, cmd, args...).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("exec %s: %w", cmd, err)
	}
	return out, nil
}

// RunInput executes a command with stdin attached. On failure, stderr is
// returned in a *CommandError, capped at 500 bytes to keep large or
// ANSI-polluted output out of logs and the TUI. The original *exec.ExitError
// is preserved via wrapping so callers can inspect exit codes with errors.As.
func (e *RealExecutor) RunInput(ctx context.Context, stdin io.Reader, cmd string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd, args...)
	var stdout, stderr bytes.Buffer
	c.Stdin = stdin
	c.Stdout = &stdout
	c.Stderr = &limitedWriter{buf: &stderr, max: maxStderrLen}
	if err := c.Run(); err != nil {
		return stdout.Bytes(), &CommandError{
			Cmd:    cmd,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}

// RunSh executes script through sh -c with stdin attached.
func RunSh(ctx context.Context, e Executor, stdin io.Reader, script string) ([]byte, error) {
	return e.RunInput(ctx, stdin, "sh", "-c", script)
}
