package identity

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/port"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RemoteVerifier delegates bearer-token verification to the external
// identity service. The service owns the whole decision; we only map
// its answer onto a user id or ErrInvalidToken.
type RemoteVerifier struct {
	client *resty.Client
}

// compile-time check: *RemoteVerifier must satisfy port.IdentityVerifier
var _ port.IdentityVerifier = (*RemoteVerifier)(nil)

type verifyResponse struct {
	UserID string `json:"user_id"`
}

func NewRemoteVerifier(baseURL, apiKey string) *RemoteVerifier {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)
	if apiKey != "" {
		client.SetHeader("X-Api-Key", apiKey)
	}
	return &RemoteVerifier{client: client}
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (db.UUID, error) {
	var out verifyResponse
	resp, err := v.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		Get("/verify")
	if err != nil {
		return db.UUID{}, fmt.Errorf("identity service unreachable: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		// fall through to parsing
	case http.StatusUnauthorized, http.StatusForbidden:
		return db.UUID{}, ErrInvalidToken
	default:
		return db.UUID{}, fmt.Errorf("identity service returned status %d", resp.StatusCode())
	}

	id, err := uuid.Parse(out.UserID)
	if err != nil {
		return db.UUID{}, fmt.Errorf("identity service returned malformed user id %q: %w", out.UserID, err)
	}
	return db.UUID(id), nil
}
