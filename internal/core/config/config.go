// Package config handles configuration loading and validation for enroll.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SubmissionMode selects the primary submission collaborator.
type SubmissionMode string

const (
	// SubmissionStub waits StubDelay and succeeds.
	SubmissionStub SubmissionMode = "stub"
	// SubmissionCommand renders Command with the payload and runs it through sh.
	SubmissionCommand SubmissionMode = "command"
)

// IsValid reports whether m is a supported mode.
func (m SubmissionMode) IsValid() bool {
	switch m {
	case SubmissionStub, SubmissionCommand:
		return true
	default:
		return false
	}
}

// Supported federated sign-up providers. An empty provider disables the flow.
const (
	ProviderNone   = ""
	ProviderGoogle = "google"
)

// Supported TUI themes.
const (
	ThemeTokyoNight = "tokyo-night"
	ThemeGruvbox    = "gruvbox"
)

// Config holds the application configuration.
type Config struct {
	Submission SubmissionConfig `yaml:"submission"`
	OAuth      OAuthConfig      `yaml:"oauth"`
	TUI        TUIConfig        `yaml:"tui"`
}

// SubmissionConfig configures the primary submission collaborator.
type SubmissionConfig struct {
	Mode      SubmissionMode `yaml:"mode"`
	StubDelay time.Duration  `yaml:"stub_delay"`
	// Command is a Go template rendered with .Role, .Values and .JSON.
	Command string        `yaml:"command"`
	Timeout time.Duration `yaml:"timeout"`
}

// OAuthConfig configures the federated sign-up collaborator.
type OAuthConfig struct {
	Provider     string `yaml:"provider"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
	// OpenBrowser opens the consent page with the platform opener.
	OpenBrowser bool `yaml:"open_browser"`
}

// Enabled reports whether a provider is configured.
func (o OAuthConfig) Enabled() bool { return o.Provider != ProviderNone }

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Submission: SubmissionConfig{
			Mode:      SubmissionStub,
			StubDelay: 2 * time.Second,
			Timeout:   30 * time.Second,
		},
		TUI: TUIConfig{
			Theme: ThemeTokyoNight,
		},
	}
}

// Load reads configuration from the given path and validates it.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses the configuration at configPath and fills in defaults without
// validating it.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Submission.Mode == "" {
		c.Submission.Mode = defaults.Submission.Mode
	}
	if c.Submission.Timeout == 0 {
		c.Submission.Timeout = defaults.Submission.Timeout
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}
