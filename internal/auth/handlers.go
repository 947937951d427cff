package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/EmpoweredVote/Review-Backend/internal/apperr"
	"github.com/EmpoweredVote/Review-Backend/internal/httputil"
	"github.com/EmpoweredVote/Review-Backend/internal/utils"
)

// Sessions is the part of the session manager the auth handlers need.
type Sessions interface {
	Create(ctx context.Context, w http.ResponseWriter, userID, username string) (string, error)
	Destroy(ctx context.Context, token string) error
	TokenFromRequest(r *http.Request) (string, bool)
	ClearCookie(w http.ResponseWriter)
}

type Handler struct {
	svc      *Service
	sessions Sessions
}

func NewHandler(svc *Service, sessions Sessions) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	identity, err := h.svc.Signup(r.Context(), creds.Username, creds.Password)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	h.startSession(w, r, identity)
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	creds, err := decodeCredentials(r)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	identity, err := h.svc.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	h.startSession(w, r, identity)
}

// LogoutHandler always succeeds, with or without a session.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if token, ok := h.sessions.TokenFromRequest(r); ok {
		if err := h.sessions.Destroy(r.Context(), token); err != nil {
			slog.ErrorContext(r.Context(), "destroy session", "error", err)
		}
	}
	h.sessions.ClearCookie(w)
	httputil.WriteJSON(w, http.StatusOK, httputil.OK)
}

// MeHandler answers with the session identity, or null without one.
func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		httputil.WriteJSON(w, http.StatusOK, nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, identity)
}

// startSession replaces any session the request already carries.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, identity utils.Identity) {
	if old, ok := h.sessions.TokenFromRequest(r); ok {
		if err := h.sessions.Destroy(r.Context(), old); err != nil {
			slog.WarnContext(r.Context(), "destroy previous session", "error", err)
		}
	}

	if _, err := h.sessions.Create(r.Context(), w, identity.UserID, identity.Username); err != nil {
		httputil.WriteError(w, r, apperr.Internal(err))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, identity)
}

// decodeCredentials accepts a JSON or a url-encoded form body.
func decodeCredentials(r *http.Request) (credentials, error) {
	var creds credentials

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return creds, apperr.InvalidInput("Invalid request body")
		}
		creds.Username = r.PostForm.Get("username")
		creds.Password = r.PostForm.Get("password")
		return creds, nil
	}

	err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&creds)
	if err != nil && !errors.Is(err, io.EOF) {
		return creds, apperr.InvalidInput("Invalid request body")
	}
	return creds, nil
}
