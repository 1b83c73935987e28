package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the upstream resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// non-success responses other than 404).
	ErrNetwork = errors.New("network error")
)

// StatusError reports a non-success HTTP response from an upstream API.
// It unwraps to [ErrNotFound] for 404 and to [ErrNetwork] otherwise.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d %s from %s", e.Code, http.StatusText(e.Code), e.URL)
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrNetwork
}

// Status extracts the upstream HTTP status from err, or 0 when err did not
// come from a non-success response.
func Status(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// NewHTTPClient creates an HTTP client with the given timeout.
// A non-positive timeout falls back to 10 seconds.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// UserAgentHeaders returns the identification headers Wikimedia asks API
// clients to send.
func UserAgentHeaders(ua string) map[string]string {
	return map[string]string{
		"User-Agent":     ua,
		"Api-User-Agent": ua,
	}
}
