package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the lifetime of an issued session token. Sessions are
// fully self-contained (no server-side store), so expiry is the only thing
// that ever ends one.
const DefaultSessionTTL = 24 * time.Hour

// Claims are the session-token claims. The subject is the username of the
// authenticated user and is carried unchanged for the token's lifetime.
type Claims struct {
	jwt.RegisteredClaims

	// SID is a random per-session identifier minted at login.
	SID string `json:"sid,omitempty"`

	// CSRFSecret is the double-submit secret bound to this session. It is
	// derived from SID by the issuer, never chosen independently, so the
	// CSRF token and the session token always belong to the same login.
	CSRFSecret string `json:"csrf,omitempty"`
}

// NewSessionClaims builds minimally-correct session claims.
func NewSessionClaims(
	subject, sid, csrfSecret string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		SID:        sid,
		CSRFSecret: csrfSecret,
	}
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
