package fitbit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

// Endpoint is Fitbit's OAuth2 endpoint pair. The authorization URL lives on
// www.fitbit.com while token exchange happens against api.fitbit.com.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://www.fitbit.com/oauth2/authorize",
	TokenURL: "https://api.fitbit.com/oauth2/token",
}

// Config holds the application credentials registered with Fitbit and
// controls the OAuth2 dance.
type Config struct {
	// ClientID is the OAuth2 client ID issued by dev.fitbit.com.
	ClientID string
	// ClientSecret is the OAuth2 client secret. Required for Exchange and
	// token refresh; server applications only.
	ClientSecret string
	// RedirectURL is the callback URI registered with Fitbit.
	RedirectURL string
	// Scopes are the permission scopes to request.
	// If empty, AllScopes() is requested.
	Scopes []Scope
	// TokenUpdater, when set, is invoked with every newly issued token:
	// the initial token from Exchange and each refreshed token afterwards.
	// Use it to persist tokens across restarts. An error aborts the request
	// that triggered the refresh.
	TokenUpdater func(*oauth2.Token) error
	// Endpoint overrides the OAuth2 endpoints. Zero value means Endpoint.
	Endpoint oauth2.Endpoint
}

// scopes returns the configured scopes, defaulting to all of them.
func (c *Config) scopes() []Scope {
	if len(c.Scopes) == 0 {
		return AllScopes()
	}
	return c.Scopes
}

// oauth2Config lowers Config into a golang.org/x/oauth2 configuration.
func (c *Config) oauth2Config() *oauth2.Config {
	endpoint := c.Endpoint
	if endpoint.AuthURL == "" && endpoint.TokenURL == "" {
		endpoint = Endpoint
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Scopes:       scopeStrings(c.scopes()),
		Endpoint:     endpoint,
	}
}

// AuthCodeURL returns the URL to send the user to for authorization
// (step one of the OAuth2 dance). state is echoed back on the redirect and
// must be verified by the caller.
func (c *Config) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return c.oauth2Config().AuthCodeURL(state, opts...)
}

// Exchange trades an authorization code for a token (step two of the OAuth2
// dance). The fresh token is handed to TokenUpdater before returning.
func (c *Config) Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	token, err := c.oauth2Config().Exchange(ctx, code, opts...)
	if err != nil {
		return nil, fmt.Errorf("fitbit: token exchange failed: %w", err)
	}
	if c.TokenUpdater != nil {
		if err := c.TokenUpdater(token); err != nil {
			return nil, fmt.Errorf("fitbit: token updater: %w", err)
		}
	}
	return token, nil
}

// tokenSource builds the token source backing a client's HTTP transport,
// wrapping refresh notification around the standard reusing source.
func (c *Config) tokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
	src := c.oauth2Config().TokenSource(ctx, token)
	if c.TokenUpdater == nil {
		return src
	}
	return &notifyingTokenSource{
		src:    src,
		last:   token.AccessToken,
		notify: c.TokenUpdater,
	}
}

// notifyingTokenSource forwards to src and calls notify whenever the access
// token changes, i.e. whenever the underlying source performed a refresh.
type notifyingTokenSource struct {
	src    oauth2.TokenSource
	notify func(*oauth2.Token) error

	mu   sync.Mutex
	last string
}

// Token implements oauth2.TokenSource.
func (s *notifyingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	changed := token.AccessToken != s.last
	if changed {
		s.last = token.AccessToken
	}
	s.mu.Unlock()
	if changed {
		if err := s.notify(token); err != nil {
			return nil, fmt.Errorf("fitbit: token updater: %w", err)
		}
	}
	return token, nil
}

var _ oauth2.TokenSource = (*notifyingTokenSource)(nil)
