package submit

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/enroll/internal/core/signup"
)

// Stub waits Delay and reports success.
type Stub struct {
	Delay time.Duration

	logger zerolog.Logger
}

var _ signup.Submitter = (*Stub)(nil)

// Submit blocks for the configured delay. A cancelled context ends the wait
// early with ctx.Err().
func (s *Stub) Submit(ctx context.Context, p signup.Payload) error {
	s.logger.Debug().
		Ctx(ctx).
		Dur("delay", s.Delay).
		Int("fields", len(p.Values)).
		Msg("stub submission")

	if s.Delay <= 0 {
		return nil
	}

	t := time.NewTimer(s.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
