// Package fitbit is a client for the Fitbit Web API.
//
// The endpoint methods in the endpoints_*_gen.go files are generated from
// Fitbit's published Swagger document by fitbitgen; everything else is
// hand-written runtime support.
//
// # Authorizing
//
// Fitbit uses the standard three-legged OAuth2 authorization-code flow.
// Send the user to the authorization URL, then exchange the code they come
// back with:
//
//	cfg := &fitbit.Config{
//	    ClientID:     os.Getenv("FITBIT_CLIENT_ID"),
//	    ClientSecret: os.Getenv("FITBIT_CLIENT_SECRET"),
//	    RedirectURL:  "https://example.com/callback",
//	    TokenUpdater: saveToken,
//	}
//	url := cfg.AuthCodeURL("state-token")
//	// ... user authorizes, redirect arrives with ?code= ...
//	token, err := cfg.Exchange(ctx, code)
//	client, err := fitbit.NewClient(ctx, cfg, token)
//
// A stored token can be reused directly with NewClient; expired access
// tokens are refreshed transparently and every fresh token is passed to
// Config.TokenUpdater so it can be persisted.
//
// # Requests
//
// Endpoint methods return the response body as json.RawMessage. Failures are
// typed: *RateLimitError for 429 (Fitbit allows 150 requests per hour per
// user), *ScopeError when the client was built without a scope an endpoint
// needs, and *APIError for everything else non-2xx.
//
//	summary, err := client.ActivitiesByDate(ctx, time.Now())
//	var rl *fitbit.RateLimitError
//	if errors.As(err, &rl) {
//	    time.Sleep(rl.RetryAfter)
//	}
package fitbit
