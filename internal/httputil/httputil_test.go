package httputil

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRetryAfterSeconds(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "1800")
	assert.Equal(t, 30*time.Minute, ParseRetryAfter(h))
}

func TestParseRetryAfterMissing(t *testing.T) {
	assert.Equal(t, time.Duration(0), ParseRetryAfter(http.Header{}))
}

func TestParseRetryAfterMalformed(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "soon")
	assert.Equal(t, time.Duration(0), ParseRetryAfter(h))
}

func TestParseRetryAfterNegative(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", "-5")
	assert.Equal(t, time.Duration(0), ParseRetryAfter(h))
}

func TestParseRetryAfterHTTPDate(t *testing.T) {
	h := http.Header{}
	h.Set("Retry-After", time.Now().Add(90*time.Second).UTC().Format(http.TimeFormat))
	d := ParseRetryAfter(h)
	assert.Greater(t, d, 80*time.Second)
	assert.LessOrEqual(t, d, 90*time.Second)
}
