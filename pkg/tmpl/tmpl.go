// Package tmpl renders Go templates into shell command lines.
package tmpl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

// shellQuote returns a shell-safe quoted string. It wraps the string in single
// quotes and escapes any existing single quotes using the '\'' technique.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	escaped := strings.ReplaceAll(s, "'", `'\''`)
	return "'" + escaped + "'"
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var funcs = template.FuncMap{
	"shq":  shellQuote,
	"join": strings.Join,
	"json": toJSON,
	"default": func(def, s string) string {
		if s == "" {
			return def
		}
		return s
	},
}

func parse(tmpl string) (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return t, nil
}

// Check parses tmpl without executing it.
func Check(tmpl string) error {
	_, err := parse(tmpl)
	return err
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - shq: Shell-quote a string for safe use in shell commands
//   - join: Join string slice with separator (e.g., join .Args " ")
//   - json: Encode a value as JSON (e.g., {{ json .Values | shq }})
//   - default: Fall back to a value when a string is empty
func Render(tmpl string, data any) (string, error) {
	t, err := parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
