package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/marcusyoung/nc-news-api/pkg/httpx"
	"github.com/marcusyoung/nc-news-api/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var sessionSecret = []byte("session-middleware-test-secret")

func signSessionToken(t *testing.T, csrfSecret string, ttl time.Duration) string {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(sessionSecret)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("tickle122", "sid-1", csrfSecret, ttl, "", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

func protectedEcho(t *testing.T) (http.Handler, *bool) {
	t.Helper()

	reached := false
	verifier := jwtx.NewVerifierHS256(sessionSecret, "")
	handler := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			httpx.WriteMsg(w, http.StatusOK, httpx.IdentityFromContext(r.Context()))
		}),
		httpx.SessionMiddleware(verifier),
	)
	return handler, &reached
}

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body httpx.MsgResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Msg
}

func TestSessionMiddlewareRejections(t *testing.T) {
	token := signSessionToken(t, "the-csrf-secret", time.Hour)

	tests := []struct {
		name    string
		cookie  string
		header  string
		wantMsg string
	}{
		{
			name:    "missing session cookie",
			wantMsg: "No jwt token",
		},
		{
			name:    "missing csrf header",
			cookie:  token,
			wantMsg: "No csrf token",
		},
		{
			name:    "garbage session token",
			cookie:  "garbage.token.value",
			header:  "the-csrf-secret",
			wantMsg: "Invalid jwt token",
		},
		{
			name:    "expired session token",
			cookie:  signSessionToken(t, "the-csrf-secret", -time.Hour),
			header:  "the-csrf-secret",
			wantMsg: "Invalid jwt token",
		},
		{
			name:    "csrf mismatch",
			cookie:  token,
			header:  "some-other-value",
			wantMsg: "Invalid csrf token",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler, reached := protectedEcho(t)

			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: httpx.SessionCookieName, Value: tc.cookie})
			}
			if tc.header != "" {
				req.Header.Set(httpx.CSRFHeaderName, tc.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusForbidden, rec.Code)
			require.Equal(t, tc.wantMsg, decodeMsg(t, rec))
			require.False(t, *reached, "handler must not run on rejection")
		})
	}
}

func TestSessionMiddlewareTokenWithoutCSRFHeaderIsNeverAuthenticated(t *testing.T) {
	// A valid session token on its own must be rejected for the CSRF
	// reason, not waved through as an authenticated request.
	handler, reached := protectedEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.AddCookie(&http.Cookie{
		Name:  httpx.SessionCookieName,
		Value: signSessionToken(t, "the-csrf-secret", time.Hour),
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "No csrf token", decodeMsg(t, rec))
	require.False(t, *reached)
}

func TestSessionMiddlewareProceedsAndAttachesIdentity(t *testing.T) {
	handler, reached := protectedEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.AddCookie(&http.Cookie{
		Name:  httpx.SessionCookieName,
		Value: signSessionToken(t, "the-csrf-secret", time.Hour),
	})
	req.Header.Set(httpx.CSRFHeaderName, "the-csrf-secret")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "tickle122", decodeMsg(t, rec))
	require.True(t, *reached)
}

func TestSessionMiddlewareIgnoresCSRFCookie(t *testing.T) {
	// The cookie copy of the csrf token is never trusted as the header.
	handler, reached := protectedEcho(t)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.AddCookie(&http.Cookie{
		Name:  httpx.SessionCookieName,
		Value: signSessionToken(t, "the-csrf-secret", time.Hour),
	})
	req.AddCookie(&http.Cookie{Name: httpx.CSRFCookieName, Value: "the-csrf-secret"})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "No csrf token", decodeMsg(t, rec))
	require.False(t, *reached)
}
