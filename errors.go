package sigsci

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tphakala/go-sigsci/internal/api"
)

// Sentinel errors for common failure modes.
var (
	ErrNoCredentials = errors.New("sigsci: no credentials configured")
	ErrNoBaseURL     = errors.New("sigsci: no base URL configured")
)

// APIError represents a Signal Sciences API error for any non-200
// response that is not an authentication failure.
type APIError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Message    string

	cause error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Status
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("sigsci: API error %d: %s (endpoint=%s)", e.StatusCode, msg, e.Endpoint)
	}
	return fmt.Sprintf("sigsci: API request failed: %s (endpoint=%s)", msg, e.Endpoint)
}

// Unwrap exposes the underlying transport cause, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// AuthenticationError indicates an authentication failure: a 401/403 on
// a resource fetch, or any failure during the /auth call itself.
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Status
	}
	if msg == "" && e.cause != nil {
		msg = e.cause.Error()
	}
	return fmt.Sprintf("sigsci: authentication failed: %s (endpoint=%s)", msg, e.Endpoint)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *AuthenticationError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ValidationError indicates invalid caller input, such as a missing
// corp identifier. It is raised before any network I/O happens and is
// distinct from the vendor-facing error classes above.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sigsci: validation error: %s", e.Message)
}

// newAPIError builds the error carried by a failed resource fetch.
func newAPIError(endpoint string, resp *api.Response, cause error) APIError {
	e := APIError{
		Endpoint: endpoint,
		cause:    cause,
	}
	if resp != nil {
		e.StatusCode = resp.StatusCode
		e.Status = resp.Status
		e.Message = string(resp.Body)
	}
	return e
}

// classifyResponse converts a non-200 resource response into the
// appropriate error type. A 200 yields nil.
func classifyResponse(endpoint string, resp *api.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthenticationError{APIError: newAPIError(endpoint, resp, nil)}
	default:
		err := newAPIError(endpoint, resp, nil)
		return &err
	}
}
