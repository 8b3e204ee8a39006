package port

import (
	"context"

	"github.com/fhuszti/uploads-ms-go/internal/db"
)

// IdentityVerifier resolves a bearer credential to a user identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (db.UUID, error)
}

// TokenCache stores short-lived token→user resolutions so repeated
// requests skip the identity round-trip.
type TokenCache interface {
	GetUserID(ctx context.Context, token string) (db.UUID, bool, error)
	SetUserID(ctx context.Context, token string, id db.UUID)
}
