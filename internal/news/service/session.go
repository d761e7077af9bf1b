package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/marcusyoung/nc-news-api/internal/news/domain"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
	"github.com/marcusyoung/nc-news-api/pkg/cryptox"
	"github.com/marcusyoung/nc-news-api/pkg/idx"
	"github.com/marcusyoung/nc-news-api/pkg/jwtx"
	"github.com/marcusyoung/nc-news-api/pkg/slogx"
)

// SessionService is the session issuer. It verifies credentials and mints
// the session token / CSRF token pair. There is no server-side session
// store: the session is fully self-contained in the token, and logout never
// invalidates anything server-side — a previously issued token stays valid
// until its expiry. Known limitation, inherited deliberately.
type SessionService struct {
	Store   store.Store
	Signer  jwtx.Signer
	CSRFKey []byte
	Issuer  string
	TTL     time.Duration
}

// Login checks the credentials and, on success, issues a new session.
// Each call mints a structurally independent session: there is no
// single-session constraint, two logins produce two valid tokens.
func (s *SessionService) Login(ctx context.Context, username, password string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, domain.ErrNotFoundFor(domain.ResourceUser, username)
		}
		return domain.Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed", "username", username)
		return domain.Session{}, domain.NewRequestError(http.StatusUnauthorized, "Authentication failed")
	}

	now := time.Now().UTC()
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	sid := idx.New().String()
	csrfSecret := s.DeriveCSRFSecret(sid)

	claims := jwtx.NewSessionClaims(user.Username, sid, csrfSecret, ttl, s.Issuer, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		Identity:  user.Username,
		SessionID: sid,
		Token:     token,
		CSRFToken: csrfSecret,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// DeriveCSRFSecret derives the session's CSRF secret from its session id.
// The secret is a deterministic HMAC of the session id under the process
// CSRF key, so the CSRF token and the session token are cryptographically
// bound to the same login event — it is never chosen independently.
func (s *SessionService) DeriveCSRFSecret(sessionID string) string {
	mac := hmac.New(sha256.New, s.CSRFKey)
	mac.Write([]byte(sessionID))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
