package enroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/enroll/internal/core/config"
	"github.com/colonyops/enroll/internal/core/eventbus"
	"github.com/colonyops/enroll/internal/core/eventbus/testbus"
	"github.com/colonyops/enroll/internal/core/signup"
	"github.com/colonyops/enroll/pkg/executil"
)

func testDeps(cfg config.Config) Deps {
	return Deps{
		Config: &cfg,
		Exec:   &executil.RecordingExecutor{},
	}
}

func TestNewApp_Defaults(t *testing.T) {
	app, err := NewApp(testDeps(config.DefaultConfig()))
	require.NoError(t, err)

	assert.NotNil(t, app.Submitter)
	assert.Nil(t, app.OAuth)
}

func TestNewApp_Google(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OAuth = config.OAuthConfig{
		Provider:     config.ProviderGoogle,
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8085/callback",
	}

	app, err := NewApp(testDeps(cfg))
	require.NoError(t, err)
	assert.NotNil(t, app.OAuth)
}

func TestNewApp_InvalidSubmission(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Submission.Mode = "carrier-pigeon"

	_, err := NewApp(testDeps(cfg))
	assert.ErrorContains(t, err, "create submitter")
}

func TestApp_NewStore(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Submission.StubDelay = 0

	tb := testbus.New(t)
	deps := testDeps(cfg)
	deps.Bus = tb.EventBus

	app, err := NewApp(deps)
	require.NoError(t, err)

	store := app.NewStore(signup.WithID("form-1"))
	assert.Equal(t, "form-1", store.State().ID)

	// no provider configured: the store reports the failure itself
	assert.Equal(t, signup.Accepted, store.AttemptOAuth(context.Background()))
	assert.Equal(t, signup.ResultFailed, store.State().LastResult)

	tb.AssertPublished(t, eventbus.EventOAuthFinished)
}
