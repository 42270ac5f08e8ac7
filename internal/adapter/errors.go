package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNetwork indicates the request never produced a response: DNS
	// failure, refused connection, or a timed-out call. Always retryable.
	ErrNetwork = errors.New("network unreachable")

	// ErrUnauthorized is matched via errors.Is against [*ServerError] values
	// with a 401 status.
	ErrUnauthorized = errors.New("client unauthorized")
)

// ServerError is a structured non-2xx backend reply. Message is extracted
// from the known envelope fields (message, title) or from the first line of
// an unstructured error body; FieldErrors carries per-field validation
// messages so forms can render them next to the offending inputs.
type ServerError struct {
	Status      int
	Message     string
	FieldErrors map[string][]string
}

func (e *ServerError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, msg)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) hold for 401 replies without
// callers inspecting the status code themselves.
func (e *ServerError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// FirstFieldError returns one validation message for the given field, or "".
func (e *ServerError) FirstFieldError(field string) string {
	for name, msgs := range e.FieldErrors {
		if strings.EqualFold(name, field) && len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}
