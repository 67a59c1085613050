package fitbit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	fitbitapi "github.com/lizlecrone/fitbit-api"
	"github.com/lizlecrone/fitbit-api/internal/httputil"
)

// defaultBaseURL is where all resource endpoints live.
const defaultBaseURL = "https://api.fitbit.com"

// Client is an authenticated Fitbit Web API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	locale     string
	scopes     map[Scope]bool
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client) error

// WithBaseURL overrides the API base URL. Mostly useful for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("fitbit: base URL cannot be empty")
		}
		c.baseURL = strings.TrimSuffix(baseURL, "/")
		return nil
	}
}

// WithHTTPClient replaces the OAuth2-backed HTTP client entirely. The caller
// becomes responsible for authentication and token refresh.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		if httpClient == nil {
			return fmt.Errorf("fitbit: HTTP client cannot be nil")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithUserAgent sets the User-Agent header value for requests.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithLocale sets the Accept-Language header, which selects the unit system
// Fitbit uses in responses (e.g. "en_US" for US units).
func WithLocale(locale string) ClientOption {
	return func(c *Client) error {
		c.locale = locale
		return nil
	}
}

// NewClient creates a client from a previously obtained token. The token is
// refreshed transparently when expired; refreshed tokens are reported to
// cfg.TokenUpdater.
func NewClient(ctx context.Context, cfg *Config, token *oauth2.Token, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("fitbit: config cannot be nil")
	}
	if token == nil {
		return nil, fmt.Errorf("fitbit: token cannot be nil")
	}

	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: oauth2.NewClient(ctx, cfg.tokenSource(ctx, token)),
		userAgent:  fmt.Sprintf("fitbit-go/%s", fitbitapi.Version()),
		scopes:     make(map[Scope]bool),
	}
	for _, s := range cfg.scopes() {
		c.scopes[s] = true
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// HasScope reports whether the client was authorized with the given scope.
func (c *Client) HasScope(s Scope) bool {
	return c.scopes[s]
}

// requireScopes returns a *ScopeError naming any of the given scopes the
// client was not authorized with. Generated endpoint methods call this
// before issuing their request.
func (c *Client) requireScopes(scopes ...Scope) error {
	var missing []Scope
	for _, s := range scopes {
		if !c.scopes[s] {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return &ScopeError{Missing: missing}
	}
	return nil
}

// Get issues an authenticated GET request against the given endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, endpoint, query)
}

// Post issues an authenticated POST request against the given endpoint.
// Fitbit write endpoints take their inputs as query parameters.
func (c *Client) Post(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, endpoint, query)
}

// Put issues an authenticated PUT request against the given endpoint.
func (c *Client) Put(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, endpoint, query)
}

// Delete issues an authenticated DELETE request against the given endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, endpoint, query)
}

// do performs the request and translates the response into parsed JSON or a
// typed error.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, fmt.Errorf("fitbit: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.locale != "" {
		req.Header.Set("Accept-Language", c.locale)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fitbit: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fitbit: failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
			return nil, nil
		}
		return json.RawMessage(body), nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{RetryAfter: httputil.ParseRetryAfter(resp.Header)}
	default:
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: body}
		// Error bodies are documented as {"errors": [...], "success": false};
		// anything else is preserved raw.
		var parsed struct {
			Errors []ErrorDetail `json:"errors"`
		}
		if err := json.Unmarshal(body, &parsed); err == nil {
			apiErr.Errors = parsed.Errors
		}
		return nil, apiErr
	}
}
