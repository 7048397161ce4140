package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/enroll/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	LogPretty  bool
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "enroll", "config.yaml")
}

// DefaultLogFile returns the log file used by the interactive form, which
// cannot share the terminal with log output.
// On macOS: ~/Library/Logs/enroll/enroll.log
// On Linux: $XDG_STATE_HOME/enroll/enroll.log (defaults to ~/.local/state/enroll/enroll.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "enroll", "enroll.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "enroll", "enroll.log")
	}

	return filepath.Join(home, ".local", "state", "enroll", "enroll.log")
}
