package fitbit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// newTestClient builds a client pointed at srv with the given scopes. The
// token has no expiry so the transport never attempts a refresh.
func newTestClient(t *testing.T, srv *httptest.Server, scopes ...Scope) *Client {
	t.Helper()
	cfg := &Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		Scopes:       scopes,
	}
	token := &oauth2.Token{AccessToken: "test-token"}
	c, err := NewClient(context.Background(), cfg, token, WithBaseURL(srv.URL))
	require.NoError(t, err)
	return c
}

func TestNewClientValidation(t *testing.T) {
	token := &oauth2.Token{AccessToken: "tok"}

	_, err := NewClient(context.Background(), nil, token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config cannot be nil")

	_, err = NewClient(context.Background(), &Config{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token cannot be nil")
}

func TestNewClientDefaultsToAllScopes(t *testing.T) {
	cfg := &Config{ClientID: "id"}
	c, err := NewClient(context.Background(), cfg, &oauth2.Token{AccessToken: "tok"})
	require.NoError(t, err)

	for _, s := range AllScopes() {
		assert.True(t, c.HasScope(s), "expected scope %q", s)
	}
}

func TestNewClientOptionErrors(t *testing.T) {
	cfg := &Config{ClientID: "id"}
	token := &oauth2.Token{AccessToken: "tok"}

	_, err := NewClient(context.Background(), cfg, token, WithBaseURL(""))
	require.Error(t, err)

	_, err = NewClient(context.Background(), cfg, token, WithHTTPClient(nil))
	require.Error(t, err)
}

func TestClientSendsAuthAndHeaders(t *testing.T) {
	var gotAuth, gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	cfg := &Config{ClientID: "id", Scopes: []Scope{ScopeProfile}}
	token := &oauth2.Token{AccessToken: "secret-token"}
	c, err := NewClient(context.Background(), cfg, token,
		WithBaseURL(srv.URL),
		WithUserAgent("custom-agent/1.0"),
		WithLocale("en_US"),
	)
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/1/user/-/profile.json", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "custom-agent/1.0", gotUA)
	assert.Equal(t, "en_US", gotLang)
}

func TestClientReturnsRawJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"displayName":"Ada"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, ScopeProfile)
	raw, err := c.Get(context.Background(), "/1/user/-/profile.json", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":{"displayName":"Ada"}}`, string(raw))
}

func TestClientNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, ScopeActivity)
	raw, err := c.Delete(context.Background(), "/1/user/-/activities/123.json", nil)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestClientRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, ScopeActivity)
	_, err := c.Get(context.Background(), "/1/user/-/activities/date/today.json", nil)

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 30*time.Second, rateErr.RetryAfter)
}

func TestClientRateLimitedWithoutHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, ScopeActivity)
	_, err := c.Get(context.Background(), "/1/user/-/activities/date/today.json", nil)

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Zero(t, rateErr.RetryAfter)
}

func TestClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"errorType":"validation","fieldName":"date","message":"Invalid date: 2020-13-40"}],"success":false}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, ScopeActivity)
	_, err := c.Get(context.Background(), "/1/user/-/activities/date/2020-13-40.json", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "validation", apiErr.Errors[0].ErrorType)
	assert.Equal(t, "date", apiErr.Errors[0].FieldName)
	assert.Contains(t, err.Error(), "Invalid date")
}

func TestClientAPIErrorNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, ScopeActivity)
	_, err := c.Get(context.Background(), "/1/user/-/activities/date/today.json", nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Errors)
	assert.Equal(t, "upstream unavailable", string(apiErr.Body))
}

func TestClientScopeEnforcement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the server when scopes are missing")
	}))
	defer srv.Close()

	c := newTestClient(t, srv, ScopeProfile)
	_, err := c.SleepByDate(context.Background(), time.Now())

	var scopeErr *ScopeError
	require.ErrorAs(t, err, &scopeErr)
	assert.Equal(t, []Scope{ScopeSleep}, scopeErr.Missing)
}

func TestClientMultipleMissingScopes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the server when scopes are missing")
	}))
	defer srv.Close()

	c := newTestClient(t, srv, ScopeActivity)
	_, err := c.ActivitiesTCX(context.Background(), "123")

	var scopeErr *ScopeError
	require.ErrorAs(t, err, &scopeErr)
	assert.Equal(t, []Scope{ScopeLocation}, scopeErr.Missing)
}

func TestWithBaseURLTrimsTrailingSlash(t *testing.T) {
	cfg := &Config{ClientID: "id"}
	token := &oauth2.Token{AccessToken: "tok"}
	c, err := NewClient(context.Background(), cfg, token, WithBaseURL("https://example.com/"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", c.baseURL)
}
