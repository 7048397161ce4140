package logutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.NotPanics(t, closer)
}

func TestNew_FileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "enroll.log")

	l, closer, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("form_id", "f-1").Msg("submit rejected")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "f-1", entry["form_id"])
	assert.Equal(t, "submit rejected", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_FilePretty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enroll.log")

	l, closer, err := New(Options{Level: "debug", File: path, Pretty: true})
	require.NoError(t, err)

	l.Debug().Str("role", "parent").Msg("role selected")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "role selected")
	assert.Contains(t, string(data), "role=parent")
	assert.NotContains(t, string(data), "\x1b[")
}

func TestNew_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enroll.log")
	require.NoError(t, os.WriteFile(path, []byte("{\"message\":\"earlier\"}\n"), 0o644))

	l, closer, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)
	l.Info().Msg("later")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "earlier")
	assert.Contains(t, string(data), "later")
}
