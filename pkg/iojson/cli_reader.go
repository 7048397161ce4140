package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON document of type T from the file named by its
// -f flag, or from stdin when the flag is unset.
type FileReader[T any] struct {
	fileFlagValue string

	// stdin and isTerminal are swapped in tests.
	stdin      io.Reader
	isTerminal func() bool
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// Provided reports whether input is available without prompting: either the
// flag is set or stdin is not a terminal.
func (fr *FileReader[T]) Provided() bool {
	return fr.fileFlagValue != "" || !fr.stdinIsTerminal()
}

func (fr *FileReader[T]) Read() (T, error) {
	var reader io.Reader
	var input T

	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	} else {
		if fr.stdinIsTerminal() {
			return input, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
		}
		reader = fr.stdinReader()
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}

func (fr *FileReader[T]) stdinReader() io.Reader {
	if fr.stdin != nil {
		return fr.stdin
	}
	return os.Stdin
}

func (fr *FileReader[T]) stdinIsTerminal() bool {
	if fr.isTerminal != nil {
		return fr.isTerminal()
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}
