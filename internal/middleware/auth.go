package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fhuszti/uploads-ms-go/internal/api_context"
	"github.com/fhuszti/uploads-ms-go/internal/handler/api"
	"github.com/fhuszti/uploads-ms-go/internal/identity"
	"github.com/fhuszti/uploads-ms-go/internal/port"
)

// WithBearerAuth authenticates the request through the injected
// verifier and stashes the resolved user id in the context. Runs before
// any file processing: an invalid credential never touches the stores.
func WithBearerAuth(verifier port.IdentityVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if errors.Is(err, identity.ErrInvalidToken) {
					api.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				} else {
					api.WriteError(w, http.StatusUnauthorized, "could not verify credentials", err)
				}
				return
			}

			ctx := api_context.WithAuthUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
