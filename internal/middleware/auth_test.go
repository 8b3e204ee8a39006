package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/uploads-ms-go/internal/api_context"
	"github.com/fhuszti/uploads-ms-go/internal/db"
	"github.com/fhuszti/uploads-ms-go/internal/identity"
)

type stubVerifier struct {
	id  db.UUID
	err error
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (db.UUID, error) {
	return s.id, s.err
}

func runAuth(t *testing.T, verifier *stubVerifier, authHeader string) (*httptest.ResponseRecorder, bool, db.UUID) {
	t.Helper()
	var reached bool
	var gotID db.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		gotID, _ = api_context.AuthUserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	WithBearerAuth(verifier)(next).ServeHTTP(rec, req)
	return rec, reached, gotID
}

func TestWithBearerAuth_MissingHeader(t *testing.T) {
	rec, reached, _ := runAuth(t, &stubVerifier{}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401", rec.Code)
	}
	if reached {
		t.Error("handler must not run without a token")
	}
}

func TestWithBearerAuth_InvalidToken(t *testing.T) {
	rec, reached, _ := runAuth(t, &stubVerifier{err: identity.ErrInvalidToken}, "Bearer nope")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401", rec.Code)
	}
	if reached {
		t.Error("handler must not run with an invalid token")
	}
}

func TestWithBearerAuth_VerifierUnreachable(t *testing.T) {
	rec, reached, _ := runAuth(t, &stubVerifier{err: errors.New("identity down")}, "Bearer tok")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401", rec.Code)
	}
	if reached {
		t.Error("handler must not run when the verifier fails")
	}
}

func TestWithBearerAuth_Valid(t *testing.T) {
	id := db.NewUUID()
	rec, reached, gotID := runAuth(t, &stubVerifier{id: id}, "Bearer tok")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d; want 200", rec.Code)
	}
	if !reached {
		t.Fatal("handler should have run")
	}
	if gotID != id {
		t.Errorf("context user id = %s; want %s", gotID, id)
	}
}
