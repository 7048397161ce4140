package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SubmissionStub, cfg.Submission.Mode)
	assert.Equal(t, 2*time.Second, cfg.Submission.StubDelay)
	assert.Equal(t, 30*time.Second, cfg.Submission.Timeout)
	assert.Equal(t, ThemeTokyoNight, cfg.TUI.Theme)
	assert.False(t, cfg.OAuth.Enabled())
}

func TestLoad_CommandMode(t *testing.T) {
	path := writeConfig(t, `
submission:
  mode: command
  command: curl -fsS -d {{ .JSON | shq }} https://example.test/signup
  timeout: 5s
tui:
  theme: gruvbox
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SubmissionCommand, cfg.Submission.Mode)
	assert.Equal(t, 5*time.Second, cfg.Submission.Timeout)
	assert.Contains(t, cfg.Submission.Command, "curl")
	assert.Equal(t, ThemeGruvbox, cfg.TUI.Theme)
}

func TestLoad_OAuth(t *testing.T) {
	path := writeConfig(t, `
oauth:
  provider: google
  client_id: id-123
  client_secret: shh
  redirect_url: http://localhost:8085/callback
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.OAuth.Enabled())
	assert.Equal(t, "id-123", cfg.OAuth.ClientID)
}

func TestLoad_StubDelayOverride(t *testing.T) {
	path := writeConfig(t, "submission:\n  stub_delay: 0s\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Submission.StubDelay)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			body:    "submission: [",
			wantErr: "parse config file",
		},
		{
			name:    "unknown mode",
			body:    "submission:\n  mode: http\n",
			wantErr: "submission.mode",
		},
		{
			name:    "command mode without command",
			body:    "submission:\n  mode: command\n",
			wantErr: "submission.command",
		},
		{
			name:    "unknown provider",
			body:    "oauth:\n  provider: github\n",
			wantErr: "oauth.provider",
		},
		{
			name:    "unknown theme",
			body:    "tui:\n  theme: neon\n",
			wantErr: "tui.theme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_ConfigPathIsDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestRead_DoesNotValidate(t *testing.T) {
	cfg, err := Read(writeConfig(t, "tui:\n  theme: neon\n"))
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.TUI.Theme)
	assert.Error(t, cfg.Validate())
}
