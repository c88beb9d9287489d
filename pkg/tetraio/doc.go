// Package tetraio is a typed client for the public TETR.IO statistics API.
//
// The client fetches the records consumed by the card renderer: user
// profiles, ranked-league summaries, leaderboards, and server-wide
// counters. Every call takes a context and goes through a shared fetch
// path that caches decoded response payloads by endpoint and retries
// transient failures (network errors, 5xx responses, rate limiting) with
// exponential backoff.
//
// Responses arrive in a success envelope; a failed envelope or a 404 maps
// to a NOT_FOUND error, which [Client.User] narrows to PLAYER_NOT_FOUND.
// Rate-limited responses surface as [errors.RateLimitedError] once retries
// are exhausted.
package tetraio
