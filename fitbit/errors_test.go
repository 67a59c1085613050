package fitbit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{
		StatusCode: 400,
		Errors: []ErrorDetail{
			{ErrorType: "validation", Message: "Invalid date"},
			{ErrorType: "validation", Message: "Invalid period"},
		},
	}
	assert.Equal(t, "fitbit: HTTP 400: Invalid date; Invalid period", err.Error())
}

func TestAPIErrorMessageWithoutDetails(t *testing.T) {
	err := &APIError{StatusCode: 502, Body: []byte("bad gateway")}
	assert.Equal(t, "fitbit: HTTP 502", err.Error())
}

func TestRateLimitErrorMessage(t *testing.T) {
	assert.Equal(t, "fitbit: rate limited, retry after 45s",
		(&RateLimitError{RetryAfter: 45 * time.Second}).Error())
	assert.Equal(t, "fitbit: rate limited",
		(&RateLimitError{}).Error())
}

func TestScopeErrorMessage(t *testing.T) {
	err := &ScopeError{Missing: []Scope{ScopeActivity, ScopeLocation}}
	assert.Equal(t, "fitbit: missing required scope(s): activity, location", err.Error())
}
