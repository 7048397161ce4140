package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"time"

	"github.com/colonyops/enroll/pkg/tmpl"
	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks the structure of the configuration. Every invalid field is
// reported; the error is a criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateSubmission(),
		c.validateOAuth(),
		criterio.Run("tui.theme", c.TUI.Theme, isTheme),
	)
}

// ValidateDeep performs Validate plus checks that touch the environment: the
// config file itself and the shell used by the command submitter. The
// configPath argument may be empty to skip the config file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateShell(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Submission.Mode == SubmissionStub {
		warnings = append(warnings, ValidationWarning{
			Category: "Submission",
			Item:     "mode",
			Message:  "stub mode does not deliver sign-ups anywhere",
		})
	}
	if c.Submission.Mode != SubmissionCommand && c.Submission.Command != "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Submission",
			Item:     "command",
			Message:  fmt.Sprintf("command is ignored in %s mode", c.Submission.Mode),
		})
	}
	if !c.OAuth.Enabled() {
		warnings = append(warnings, ValidationWarning{
			Category: "OAuth",
			Item:     "provider",
			Message:  "no provider configured; federated sign-up is disabled",
		})
	}

	return warnings
}

func (c *Config) validateSubmission() error {
	s := c.Submission
	var errs criterio.FieldErrorsBuilder

	if !s.Mode.IsValid() {
		errs = errs.Append("submission.mode", fmt.Errorf("must be %q or %q, got %q", SubmissionStub, SubmissionCommand, s.Mode))
	}
	if s.StubDelay < 0 {
		errs = errs.Append("submission.stub_delay", errors.New("must not be negative"))
	}
	if s.Timeout < time.Second {
		errs = errs.Append("submission.timeout", errors.New("must be at least 1s"))
	}
	if s.Mode == SubmissionCommand {
		if s.Command == "" {
			errs = errs.Append("submission.command", errors.New("required in command mode"))
		} else if err := tmpl.Check(s.Command); err != nil {
			errs = errs.Append("submission.command", fmt.Errorf("template error: %w", err))
		}
	}

	return errs.ToError()
}

func (c *Config) validateOAuth() error {
	o := c.OAuth
	if !o.Enabled() {
		return nil
	}

	if o.Provider != ProviderGoogle {
		return criterio.NewFieldErrors("oauth.provider", fmt.Errorf("unsupported provider %q", o.Provider))
	}

	return criterio.ValidateStruct(
		criterio.Run("oauth.client_id", o.ClientID, notEmpty),
		criterio.Run("oauth.client_secret", o.ClientSecret, notEmpty),
		criterio.Run("oauth.redirect_url", o.RedirectURL, isAbsoluteURL),
	)
}

func (c *Config) validateShell() error {
	if c.Submission.Mode != SubmissionCommand {
		return nil
	}
	if _, err := exec.LookPath("sh"); err != nil {
		return criterio.NewFieldErrors("submission.command", errors.New("sh executable not found"))
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func notEmpty(s string) error {
	if s == "" {
		return errors.New("required")
	}
	return nil
}

func isAbsoluteURL(s string) error {
	if s == "" {
		return errors.New("required")
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL, got %q", s)
	}
	return nil
}

func isTheme(s string) error {
	switch s {
	case ThemeTokyoNight, ThemeGruvbox:
		return nil
	default:
		return fmt.Errorf("unknown theme %q", s)
	}
}
