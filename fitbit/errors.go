package fitbit

import (
	"fmt"
	"strings"
	"time"
)

// ErrorDetail is a single entry of the "errors" array Fitbit returns in
// failure response bodies.
type ErrorDetail struct {
	ErrorType string `json:"errorType"`
	FieldName string `json:"fieldName,omitempty"`
	Message   string `json:"message"`
}

// APIError is returned for non-2xx responses other than rate limiting.
// The vendor's decoded errors array is available in Errors; Body preserves
// the raw response for bodies that were not the documented JSON shape.
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		msgs := make([]string, len(e.Errors))
		for i, d := range e.Errors {
			msgs[i] = d.Message
		}
		return fmt.Sprintf("fitbit: HTTP %d: %s", e.StatusCode, strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("fitbit: HTTP %d", e.StatusCode)
}

// RateLimitError is returned when Fitbit responds with 429 Too Many Requests.
// Fitbit allows 150 requests per hour per user; RetryAfter reports how long
// to wait before trying again (zero if the Retry-After header was absent or
// malformed).
type RateLimitError struct {
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("fitbit: rate limited, retry after %s", e.RetryAfter)
	}
	return "fitbit: rate limited"
}

// ScopeError is returned when the client was not authorized with every scope
// an endpoint requires. No request is issued.
type ScopeError struct {
	Missing []Scope
}

// Error implements the error interface.
func (e *ScopeError) Error() string {
	return fmt.Sprintf("fitbit: missing required scope(s): %s", strings.Join(scopeStrings(e.Missing), ", "))
}
