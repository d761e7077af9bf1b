package domain

import "time"

// Session is what a successful login produces: the signed session token and
// the matching CSRF token, both destined for cookies. The token is opaque to
// the client; it holds it and returns it unmodified.
type Session struct {
	Identity  string    // username, fixed for the session's lifetime
	SessionID string    // random per-session ULID embedded in the token
	Token     string    // signed JWT (jwt-token cookie, HttpOnly)
	CSRFToken string    // derived csrf secret (csrf-token cookie, script-readable)
	ExpiresAt time.Time // sessions end by expiry only, there is no revocation
}
