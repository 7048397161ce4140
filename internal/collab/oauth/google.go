package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/colonyops/enroll/internal/core/config"
	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/pkg/executil"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Google signs users up with their Google account.
type Google struct {
	config      oauth2.Config
	userInfoURL string
	prompt      Prompter
	browser     executil.Executor
	onUser      func(UserInfo)
	logger      zerolog.Logger
}

var _ signup.OAuthSigner = (*Google)(nil)

// WithEndpoint overrides the provider endpoints.
func WithEndpoint(ep oauth2.Endpoint, userInfoURL string) Option {
	return func(g *Google) {
		g.config.Endpoint = ep
		g.userInfoURL = userInfoURL
	}
}

// WithBrowser opens the consent page with the platform opener run through exec.
func WithBrowser(exec executil.Executor) Option {
	return func(g *Google) { g.browser = exec }
}

// NewGoogle builds a Google signer from cfg.
func NewGoogle(cfg config.OAuthConfig, prompt Prompter, opts ...Option) *Google {
	g := &Google{
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"openid",
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
		prompt:      prompt,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SignUp runs the consent flow and reads the user's profile.
func (g *Google) SignUp(ctx context.Context) error {
	state := uuid.NewString()
	authURL := g.config.AuthCodeURL(state, oauth2.AccessTypeOnline)

	g.openBrowser(ctx, authURL)

	code, err := g.prompt.PromptCode(ctx, authURL)
	if err != nil {
		return err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrNoCode
	}

	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	info, err := g.userInfo(ctx, token)
	if err != nil {
		return fmt.Errorf("read google profile: %w", err)
	}

	g.logger.Info().Ctx(ctx).Str("email", info.Email).Msg("google sign-up completed")
	if g.onUser != nil {
		g.onUser(info)
	}
	return nil
}

func (g *Google) userInfo(ctx context.Context, token *oauth2.Token) (UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return UserInfo{}, err
	}

	resp, err := g.config.Client(ctx, token).Do(req)
	if err != nil {
		return UserInfo{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return UserInfo{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return UserInfo{}, fmt.Errorf("decode profile: %w", err)
	}
	return info, nil
}

func (g *Google) openBrowser(ctx context.Context, url string) {
	if g.browser == nil {
		return
	}

	var err error
	switch runtime.GOOS {
	case "darwin":
		_, err = g.browser.Run(ctx, "open", url)
	case "windows":
		_, err = g.browser.Run(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		_, err = g.browser.Run(ctx, "xdg-open", url)
	}
	if err != nil {
		g.logger.Debug().Ctx(ctx).Err(err).Msg("could not open browser")
	}
}
