// Package fitbitapi generates and ships a Go client for the Fitbit Web API.
//
// The repository has two halves:
//
//   - A build-time toolchain (swagger, generator, cmd/fitbitgen) that fetches
//     Fitbit's published Swagger 2.0 document and renders one client method
//     per endpoint into the fitbit package.
//   - The fitbit package itself: a thin runtime client around an OAuth2 HTTP
//     session that performs authenticated requests, refreshes expired tokens,
//     and translates responses into parsed JSON or typed errors.
//
// Regenerate the endpoint methods with:
//
//	fitbitgen generate -o ./fitbit https://dev.fitbit.com/build/reference/web-api/explore/fitbit-web-api-swagger.json
package fitbitapi
