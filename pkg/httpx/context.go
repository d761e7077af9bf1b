package httpx

import (
	"context"

	"github.com/marcusyoung/nc-news-api/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyIdentity ctxKey = "identity"
	CtxKeyClaims   ctxKey = "claims"
)

// IdentityFromContext returns the authenticated username attached by the
// session middleware, or "" when the request is unauthenticated.
func IdentityFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyIdentity).(string); ok {
		return v
	}
	return ""
}

// ClaimsFromContext returns the full decoded session claims, if present.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}
