package jwtx_test

import (
	"testing"
	"time"

	"github.com/marcusyoung/nc-news-api/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret-key-0123456789")

func TestNewSignerHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.Error(t, err)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(
		"tickle122", "01JABCDEF0000000000000SID0", "csrf-secret-value",
		jwtx.DefaultSessionTTL, "nc-news-api", now,
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier := jwtx.NewVerifierHS256(testSecret, "nc-news-api")
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "tickle122", got.Subject)
	require.Equal(t, "01JABCDEF0000000000000SID0", got.SID)
	require.Equal(t, "csrf-secret-value", got.CSRFSecret)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := jwtx.NewVerifierHS256(testSecret, "")

	t.Run("not a jwt at all", func(t *testing.T) {
		_, err := verifier.Verify("not-a-token")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("syntactically valid but unsigned", func(t *testing.T) {
		// header+payload+empty signature, alg none
		_, err := verifier.Verify("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ4In0.")
		require.Error(t, err)
	})
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("user", "sid", "csrf", time.Hour, "", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS256([]byte("another-secret-key-9876543210"), "")
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	issued := time.Now().UTC().Add(-2 * time.Hour)
	claims := jwtx.NewSessionClaims("user", "sid", "csrf", time.Hour, "", issued)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS256(testSecret, "")
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewSessionClaims("user", "sid", "csrf", time.Hour, "other-service", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS256(testSecret, "nc-news-api")
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}
