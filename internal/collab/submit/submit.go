// Package submit provides the primary submission collaborators: a stub that
// always succeeds and a command runner that hands the payload to a shell
// command.
package submit

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/enroll/internal/core/config"
	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/pkg/executil"
)

// New builds the submitter selected by cfg.
func New(cfg config.SubmissionConfig, exec executil.Executor, logger zerolog.Logger) (signup.Submitter, error) {
	switch cfg.Mode {
	case config.SubmissionStub, "":
		return &Stub{Delay: cfg.StubDelay, logger: logger}, nil
	case config.SubmissionCommand:
		return &Command{
			Template: cfg.Command,
			Timeout:  cfg.Timeout,
			Exec:     exec,
			logger:   logger,
		}, nil
	default:
		return nil, fmt.Errorf("unknown submission mode %q", cfg.Mode)
	}
}
