package cache

import (
	"context"

	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/port"
)

// Noop is used when redis is not configured: every lookup is a miss.
type Noop struct{}

// compile-time check: *Noop must satisfy port.TokenCache
var _ port.TokenCache = (*Noop)(nil)

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) GetUserID(ctx context.Context, token string) (db.UUID, bool, error) {
	return db.UUID{}, false, nil
}

func (n *Noop) SetUserID(ctx context.Context, token string, id db.UUID) {}
