// Package enroll assembles the collaborators of one enroll run.
package enroll

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/enroll/internal/collab/oauth"
	"github.com/colonyops/enroll/internal/collab/submit"
	"github.com/colonyops/enroll/internal/core/config"
	"github.com/colonyops/enroll/internal/core/eventbus"
	"github.com/colonyops/enroll/internal/core/logging"
	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/pkg/executil"
)

// App is the central entry point for enroll operations.
// Commands and the TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Config *config.Config
	Bus    *eventbus.EventBus

	Submitter signup.Submitter
	// OAuth is nil when no provider is configured.
	OAuth signup.OAuthSigner
}

// Deps are the inputs NewApp builds collaborators from.
type Deps struct {
	Config   *config.Config
	Bus      *eventbus.EventBus
	Exec     executil.Executor
	Prompter oauth.Prompter
}

// NewApp builds the configured submitter and federated sign-up provider.
func NewApp(deps Deps) (*App, error) {
	cfg := deps.Config

	sub, err := submit.New(cfg.Submission, deps.Exec, logging.Component("submit"))
	if err != nil {
		return nil, fmt.Errorf("create submitter: %w", err)
	}

	oauthLog := logging.Component("oauth")
	signer, err := oauth.New(cfg.OAuth, deps.Prompter,
		oauth.WithLogger(oauthLog),
		oauth.WithBrowser(deps.Exec),
		oauth.OnUser(func(u oauth.UserInfo) {
			oauthLog.Info().Str("email", u.Email).Str("name", u.Name).Msg("provider profile received")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create oauth provider: %w", err)
	}

	return &App{
		Config:    cfg,
		Bus:       deps.Bus,
		Submitter: sub,
		OAuth:     signer,
	}, nil
}

// NewStore returns a fresh form wired to the app collaborators. When the app
// has a bus, every state change of the form is published on it.
func (a *App) NewStore(opts ...signup.Option) *signup.Store {
	base := []signup.Option{
		signup.WithSubmitter(a.Submitter),
		signup.WithLogger(logging.Component("form")),
	}
	if a.OAuth != nil {
		base = append(base, signup.WithOAuthSigner(a.OAuth))
	}

	store := signup.NewStore(append(base, opts...)...)
	if a.Bus != nil {
		eventbus.Attach(a.Bus, store)
	}
	return store
}
