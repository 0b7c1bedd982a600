package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport failures: the request never produced a
// server response. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// FieldDetail is one entry of a server-side validation error list.
type FieldDetail struct {
	Path    string `json:"path"`
	Message string `json:"msg"`
}

// APIError is a server-rejected request: the backend answered with a non-2xx
// status and, possibly, a structured body.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Message is the human-readable message supplied by the server, if any.
	Message string

	// ErrorType is the server's error enum, e.g. a duplicate-nickname conflict.
	ErrorType string

	// Details lists per-field validation failures, if the server sent them.
	Details []FieldDetail
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error %d", e.Status)
}

// FieldErrors maps validation details to form field names. The backend
// reports the login handle under "nickname"; registration forms call that
// field "username", so the key is normalized.
func (e *APIError) FieldErrors() map[string]string {
	if len(e.Details) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Details))
	for _, d := range e.Details {
		field := d.Path
		if field == "nickname" {
			field = "username"
		}
		msg := d.Message
		if msg == "" {
			msg = "invalid value"
		}
		out[field] = msg
	}
	return out
}
