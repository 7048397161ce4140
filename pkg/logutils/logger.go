// Package logutils builds the process-wide zerolog logger.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Options configures New.
type Options struct {
	// Level is one of: trace, debug, info, warn, error, fatal, disabled.
	Level string
	// File receives JSON logs. Empty means stderr.
	File string
	// Pretty writes human-readable lines instead of JSON. Colors are only
	// used when the destination is a terminal.
	Pretty bool
}

// New returns a logger configured by opts and a closer for the log file.
// Stdout is never used so command output stays machine readable.
func New(opts Options) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}

	var writer io.Writer = os.Stderr
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	if opts.File != "" {
		logsDir := filepath.Dir(opts.File)
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		osFile, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, err
		}
		closer = func() { _ = osFile.Close() }
		writer = osFile
		isTTY = false
	}

	if opts.Pretty {
		writer = zerolog.ConsoleWriter{Out: writer, NoColor: !isTTY}
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}
