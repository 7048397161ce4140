package oauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/colonyops/enroll/internal/core/config"
	"github.com/colonyops/enroll/pkg/executil"
)

type fakeProvider struct {
	*httptest.Server

	mu             sync.Mutex
	tokenStatus    int
	userInfoStatus int
	gotCode        string
	gotAuth        string
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	fp := &fakeProvider{tokenStatus: http.StatusOK, userInfoStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		fp.mu.Lock()
		defer fp.mu.Unlock()
		fp.gotCode = r.PostForm.Get("code")
		if fp.tokenStatus != http.StatusOK {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(fp.tokenStatus)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		fp.mu.Lock()
		defer fp.mu.Unlock()
		fp.gotAuth = r.Header.Get("Authorization")
		if fp.userInfoStatus != http.StatusOK {
			w.WriteHeader(fp.userInfoStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","email":"asha@example.com","name":"Asha Menon"}`))
	})

	fp.Server = httptest.NewServer(mux)
	t.Cleanup(fp.Close)
	return fp
}

func (fp *fakeProvider) option() Option {
	return WithEndpoint(oauth2.Endpoint{
		AuthURL:   fp.URL + "/auth",
		TokenURL:  fp.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}, fp.URL+"/userinfo")
}

func testConfig() config.OAuthConfig {
	return config.OAuthConfig{
		Provider:     config.ProviderGoogle,
		ClientID:     "client-1",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8085/callback",
	}
}

func codePrompt(code string, seen *string) Prompter {
	return PrompterFunc(func(_ context.Context, authURL string) (string, error) {
		if seen != nil {
			*seen = authURL
		}
		return code, nil
	})
}

func TestGoogle_SignUp(t *testing.T) {
	fp := newFakeProvider(t)

	var authURL string
	var user UserInfo
	g := NewGoogle(testConfig(), codePrompt("  code-abc \n", &authURL), fp.option(), OnUser(func(u UserInfo) { user = u }))

	require.NoError(t, g.SignUp(context.Background()))

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "/auth", u.Path)
	assert.Equal(t, "client-1", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:8085/callback", u.Query().Get("redirect_uri"))
	assert.NotEmpty(t, u.Query().Get("state"))

	fp.mu.Lock()
	assert.Equal(t, "code-abc", fp.gotCode)
	assert.Equal(t, "Bearer tok-123", fp.gotAuth)
	fp.mu.Unlock()
	assert.Equal(t, UserInfo{ID: "42", Email: "asha@example.com", Name: "Asha Menon"}, user)
}

func TestGoogle_SignUpFailures(t *testing.T) {
	promptErr := errors.New("terminal closed")

	tests := []struct {
		name    string
		prompt  Prompter
		setup   func(fp *fakeProvider)
		wantIs  error
		wantMsg string
	}{
		{
			name:   "prompt error",
			prompt: PrompterFunc(func(context.Context, string) (string, error) { return "", promptErr }),
			wantIs: promptErr,
		},
		{
			name:   "blank code",
			prompt: codePrompt("   ", nil),
			wantIs: ErrNoCode,
		},
		{
			name:    "token rejected",
			prompt:  codePrompt("bad", nil),
			setup:   func(fp *fakeProvider) { fp.tokenStatus = http.StatusBadRequest },
			wantMsg: "exchange authorization code",
		},
		{
			name:    "profile unavailable",
			prompt:  codePrompt("good", nil),
			setup:   func(fp *fakeProvider) { fp.userInfoStatus = http.StatusInternalServerError },
			wantMsg: "read google profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := newFakeProvider(t)
			if tt.setup != nil {
				tt.setup(fp)
			}

			called := false
			g := NewGoogle(testConfig(), tt.prompt, fp.option(), OnUser(func(UserInfo) { called = true }))

			err := g.SignUp(context.Background())
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.False(t, called)
		})
	}
}

func TestGoogle_OpensBrowser(t *testing.T) {
	fp := newFakeProvider(t)
	rec := &executil.RecordingExecutor{}

	var authURL string
	g := NewGoogle(testConfig(), codePrompt("code", &authURL), fp.option(), WithBrowser(rec))
	require.NoError(t, g.SignUp(context.Background()))

	cmds := rec.Recorded()
	require.Len(t, cmds, 1)
	assert.Contains(t, cmds[0].Args, authURL)
}

func TestNew(t *testing.T) {
	signer, err := New(config.OAuthConfig{}, codePrompt("x", nil))
	require.NoError(t, err)
	assert.Nil(t, signer)

	signer, err = New(testConfig(), codePrompt("x", nil))
	require.NoError(t, err)
	assert.IsType(t, &Google{}, signer)

	_, err = New(config.OAuthConfig{Provider: "github"}, codePrompt("x", nil))
	assert.Error(t, err)
}
