package executil

import (
	"context"
	"io"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd   string
	Args  []string
	Stdin string
}

// RecordingExecutor captures commands for testing.
// Configure Outputs and Errors maps to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps command names to their output.
	// Key is the command name (e.g., "sh").
	Outputs map[string][]byte

	// Errors maps command names to their error.
	Errors map[string]error
}

var _ Executor = (*RecordingExecutor)(nil)

// Run records the command and returns configured output/error.
func (e *RecordingExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	return e.record("", cmd, args...)
}

// RunInput records the command along with everything read from stdin.
func (e *RecordingExecutor) RunInput(ctx context.Context, stdin io.Reader, cmd string, args ...string) ([]byte, error) {
	var in string
	if stdin != nil {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		in = string(b)
	}
	return e.record(in, cmd, args...)
}

func (e *RecordingExecutor) record(stdin, cmd string, args ...string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{
		Cmd:   cmd,
		Args:  args,
		Stdin: stdin,
	})

	var out []byte
	var err error

	if e.Outputs != nil {
		out = e.Outputs[cmd]
	}
	if e.Errors != nil {
		err = e.Errors[cmd]
	}

	return out, err
}

// Recorded returns a copy of the recorded commands.
func (e *RecordingExecutor) Recorded() []RecordedCommand {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]RecordedCommand, len(e.Commands))
	copy(out, e.Commands)
	return out
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
