// Package httputil is the boundary where operation results become HTTP
// responses. Every handler reports failures through WriteError.
package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/EmpoweredVote/Review-Backend/internal/apperr"
	"github.com/go-chi/chi/v5/middleware"
)

type errorBody struct {
	Error string `json:"error"`
}

// OK is the body of endpoints that only acknowledge success.
var OK = map[string]bool{"ok": true}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindInvalidInput, apperr.KindPayloadTooLarge:
		return http.StatusBadRequest
	case apperr.KindUnauthorized, apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes {"error": msg}. Internal errors are logged with their
// cause and reported to the client as a generic "server error".
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperr.KindInternal {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
		WriteJSON(w, http.StatusInternalServerError, errorBody{Error: "server error"})
		return
	}

	WriteJSON(w, StatusFor(appErr.Kind), errorBody{Error: appErr.Message})
}
