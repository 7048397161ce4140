package config

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		names = append(names, fe.Field)
	}
	return names
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Submission.Mode = "carrier-pigeon"
	cfg.Submission.StubDelay = -1
	cfg.Submission.Timeout = 0
	cfg.TUI.Theme = "neon"

	names := fieldNames(t, cfg.Validate())
	assert.ElementsMatch(t, []string{
		"submission.mode",
		"submission.stub_delay",
		"submission.timeout",
		"tui.theme",
	}, names)
}

func TestValidate_CommandTemplate(t *testing.T) {
	tests := []struct {
		name    string
		command string
		wantErr bool
	}{
		{"valid", "echo {{ .Role | shq }}", false},
		{"json helper", "curl -d {{ json .Values | shq }} http://x", false},
		{"unterminated action", "echo {{ .Role", true},
		{"unknown function", "echo {{ nope .Role }}", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Submission.Mode = SubmissionCommand
			cfg.Submission.Command = tt.command

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, []string{"submission.command"}, fieldNames(t, err))
		})
	}
}

func TestValidate_OAuth(t *testing.T) {
	t.Run("complete google config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.OAuth = OAuthConfig{
			Provider:     ProviderGoogle,
			ClientID:     "id",
			ClientSecret: "secret",
			RedirectURL:  "http://localhost:8085/callback",
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing credentials", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.OAuth = OAuthConfig{Provider: ProviderGoogle, RedirectURL: "callback"}

		assert.ElementsMatch(t, []string{
			"oauth.client_id",
			"oauth.client_secret",
			"oauth.redirect_url",
		}, fieldNames(t, cfg.Validate()))
	})

	t.Run("disabled ignores credentials", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.OAuth = OAuthConfig{ClientID: "id"}
		assert.NoError(t, cfg.Validate())
	})
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	dir := t.TempDir()

	assert.Equal(t, []string{"config_file"}, fieldNames(t, cfg.ValidateDeep(dir)))
}

func TestValidateDeep_MissingConfigFileIsFine(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.ValidateDeep(""))
	assert.NoError(t, cfg.ValidateDeep(t.TempDir()+"/missing.yaml"))
}

func TestWarnings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		warnings := cfg.Warnings()
		require.Len(t, warnings, 2)
		assert.Equal(t, "Submission", warnings[0].Category)
		assert.Equal(t, "OAuth", warnings[1].Category)
	})

	t.Run("ignored command", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Submission.Command = "echo hi"
		cfg.OAuth.Provider = ProviderGoogle

		var items []string
		for _, w := range cfg.Warnings() {
			items = append(items, w.Item)
		}
		assert.Equal(t, []string{"mode", "command"}, items)
	})
}
