// Package httputil provides HTTP-related constants and header parsing helpers.
package httputil

import (
	"net/http"
	"strconv"
	"time"
)

// HTTP method constants as they appear in Swagger path items (lowercase).
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
)

// ParseRetryAfter parses the Retry-After header of a response into a duration.
// Both forms from RFC 9110 are handled: delay-seconds and HTTP-date.
// Returns zero if the header is absent or malformed.
func ParseRetryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		d := time.Until(at)
		if d < 0 {
			return 0
		}
		return d
	}
	return 0
}
