package identity

import (
	"context"

	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/port"
)

// CachedVerifier wraps another verifier with a token cache, so repeated
// requests with the same bearer token skip the identity round-trip.
// Cache failures degrade to a plain verification, never to a denial.
type CachedVerifier struct {
	inner port.IdentityVerifier
	cache port.TokenCache
}

// compile-time check: *CachedVerifier must satisfy port.IdentityVerifier
var _ port.IdentityVerifier = (*CachedVerifier)(nil)

func NewCachedVerifier(inner port.IdentityVerifier, cache port.TokenCache) *CachedVerifier {
	return &CachedVerifier{inner: inner, cache: cache}
}

func (v *CachedVerifier) Verify(ctx context.Context, token string) (db.UUID, error) {
	if id, ok, err := v.cache.GetUserID(ctx, token); err == nil && ok {
		return id, nil
	}

	id, err := v.inner.Verify(ctx, token)
	if err != nil {
		return db.UUID{}, err
	}

	v.cache.SetUserID(ctx, token, id)
	return id, nil
}
