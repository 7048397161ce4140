// Package iojson reads and writes the JSON documents exchanged by the
// non-interactive commands.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the document written when a command cannot process its input.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// fallback builds the error document by hand. It is only used when data
// itself cannot be marshaled, which is a bug in the caller.
func fallback(msg string, marshalErr error) string {
	msgBytes, _ := json.Marshal(msg)
	errBytes, _ := json.Marshal(marshalErr.Error())
	return fmt.Sprintf(`{"message":%s,"data":{"json_error":%s}}`, msgBytes, errBytes)
}

// MarshalError renders msg and data as an [Error] document.
func MarshalError(msg string, data map[string]any) string {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		return fallback(msg, err)
	}
	return string(bits)
}

// WriteError writes an [Error] document to w.
func WriteError(w io.Writer, msg string, data map[string]any) error {
	_, err := fmt.Fprintln(w, MarshalError(msg, data))
	return err
}

// WriteWith writes obj to w as indented JSON. When obj cannot be marshaled
// an [Error] document is written to ew instead.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		_, err = fmt.Fprintln(ew, fallback("marshal output", err))
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
