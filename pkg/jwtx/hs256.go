package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// minKeyLen guards against accidentally signing with a trivially
// brute-forceable secret (e.g. an empty env var).
const minKeyLen = 16

// HS256Signer implements the Signer interface using an HMAC-SHA256 secret.
// The secret is process-wide immutable configuration injected at startup.
type HS256Signer struct {
	key []byte
}

// NewSignerHS256 creates an HS256 signer from a shared secret.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	s := &HS256Signer{key: secret}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.key)
}

// Validate does a quick sanity check to make sure we actually have a key.
func (s *HS256Signer) Validate() error {
	if len(s.key) < minKeyLen {
		return errors.New("jwtx: HS256 secret too short")
	}
	return nil
}

// HS256Verifier verifies HS256-signed session tokens against the same shared
// secret the signer uses.
type HS256Verifier struct {
	key    []byte
	issuer string
}

// NewVerifierHS256 returns a Verifier for HS256 tokens. An empty issuer
// means "don't care".
func NewVerifierHS256(secret []byte, issuer string) *HS256Verifier {
	return &HS256Verifier{key: secret, issuer: issuer}
}

// Verify parses and validates the token, returning the decoded claims.
// Signature, expiry and issuer are all checked before the claims are handed
// back, so a nil error means the token is fully trusted.
func (v *HS256Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return v.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// mapParseError folds the library's error tree into our sentinel errors so
// callers can switch on stable values.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	default:
		return ErrMalformed
	}
}
