// Package trakt provides the HTTP client for the Trakt v2 API.
//
// # Overview
//
// Only one lookup is needed by the tracker: the extended record of a show and
// its season list, keyed by the show's IMDb id. Detail performs both requests
// and converts the payloads into media.ShowDetails and media.SeasonInfo.
//
// # Endpoints
//
//	GET /shows/{imdb_id}?extended=full
//	GET /shows/{imdb_id}/seasons?extended=full
//
// Every request carries:
//
//   - trakt-api-version: 2
//   - trakt-api-key: the configured client id (omitted when empty)
//   - User-Agent: showtrack/<version>
//
// # Error Handling
//
// HTTP statuses >= 400 are returned as *APIError so callers can inspect the
// path and status with errors.As. Transport failures are wrapped with
// "execute request" and malformed bodies with "decode response". The client
// never retries; the caller decides whether a failure is fatal.
//
// # Testing
//
// Detailer is the consumer-facing interface. Tests of code that needs a
// lookup should use a fake Detailer; tests of this package use
// httptest.NewServer.
package trakt
