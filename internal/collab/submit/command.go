package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/pkg/executil"
	"github.com/colonyops/enroll/pkg/tmpl"
)

// ErrTimedOut is returned when the command outlives its timeout.
var ErrTimedOut = errors.New("submission timed out")

// CommandData is the data available to the command template.
type CommandData struct {
	Role   string            // role value, e.g. "student"
	Values map[string]string // relevant field values keyed by field name
	JSON   string            // the payload encoded as JSON
}

// Command renders Template with the payload and runs the result through
// sh -c. The payload JSON is also written to the command's stdin. A non-zero
// exit fails the submission; the last line of stderr becomes the message.
type Command struct {
	Template string
	Timeout  time.Duration
	Exec     executil.Executor

	logger zerolog.Logger
}

var _ signup.Submitter = (*Command)(nil)

func (c *Command) Submit(ctx context.Context, p signup.Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	data := CommandData{
		Role:   string(p.Role),
		Values: make(map[string]string, len(p.Values)),
		JSON:   string(body),
	}
	for f, v := range p.Values {
		data.Values[string(f)] = v
	}

	script, err := tmpl.Render(c.Template, data)
	if err != nil {
		return fmt.Errorf("render submission command: %w", err)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	c.logger.Debug().Ctx(ctx).Str("role", data.Role).Msg("running submission command")

	out, err := executil.RunSh(ctx, c.Exec, bytes.NewReader(body), script)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrTimedOut
		}
		return commandFailure(err)
	}

	c.logger.Debug().Ctx(ctx).Int("output_bytes", len(out)).Msg("submission command finished")
	return nil
}

// commandFailure converts a failed run into the error shown to the user.
func commandFailure(err error) error {
	var cmdErr *executil.CommandError
	if errors.As(err, &cmdErr) {
		if line := lastLine(cmdErr.Stderr); line != "" {
			return errors.New(line)
		}
	}
	return fmt.Errorf("submission command failed: %w", err)
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
