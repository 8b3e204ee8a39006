package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fhuszti/uploads-ms-go/internal/logger"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	writeError(w, status, msg, err, false)
}

// WriteErrorDetails also surfaces the underlying error message in the
// response body. Only for non-production environments.
func WriteErrorDetails(w http.ResponseWriter, status int, msg string, err error, showDetails bool) {
	writeError(w, status, msg, err, showDetails)
}

func writeError(w http.ResponseWriter, status int, msg string, err error, showDetails bool) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}

	resp := ErrorResponse{Error: msg}
	if showDetails && err != nil {
		resp.Details = err.Error()
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, resp)
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}
