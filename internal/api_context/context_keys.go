package api_context

import (
	"context"

	"github.com/fhuszti/uploads-ms-go/internal/db"
)

type ctxKey string

const AuthUserIDKey ctxKey = "authUserID"

func AuthUserIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(db.UUID)
	return id, ok
}

func WithAuthUserID(ctx context.Context, id db.UUID) context.Context {
	return context.WithValue(ctx, AuthUserIDKey, id)
}
