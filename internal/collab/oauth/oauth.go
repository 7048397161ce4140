// Package oauth implements federated sign-up over OAuth 2.0. The user is sent
// to the provider's consent page, pastes back the authorization code, and the
// code is exchanged for a token used to read the profile.
package oauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/enroll/internal/core/config"
	"github.com/colonyops/enroll/internal/core/signup"
)

// ErrNoCode is returned when the prompt yields an empty authorization code.
var ErrNoCode = errors.New("no authorization code entered")

// UserInfo is the profile returned by the provider.
type UserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// Prompter shows authURL to the user and returns the authorization code they
// paste back.
type Prompter interface {
	PromptCode(ctx context.Context, authURL string) (string, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(ctx context.Context, authURL string) (string, error)

func (fn PrompterFunc) PromptCode(ctx context.Context, authURL string) (string, error) {
	return fn(ctx, authURL)
}

// New returns the signer for cfg.Provider, or nil when no provider is
// configured.
func New(cfg config.OAuthConfig, prompt Prompter, opts ...Option) (signup.OAuthSigner, error) {
	switch cfg.Provider {
	case config.ProviderNone:
		return nil, nil
	case config.ProviderGoogle:
		return NewGoogle(cfg, prompt, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported oauth provider %q", cfg.Provider)
	}
}

// Option configures a provider.
type Option func(*Google)

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Google) { g.logger = l }
}

// OnUser registers fn to receive the profile after a successful sign-up.
func OnUser(fn func(UserInfo)) Option {
	return func(g *Google) { g.onUser = fn }
}
