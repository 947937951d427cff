package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes registers the credential endpoints. /me runs behind
// optionalSession so it can see an identity without requiring one.
func SetupRoutes(r chi.Router, h *Handler, optionalSession func(http.Handler) http.Handler) {
	r.Post("/signup", h.SignupHandler)
	r.Post("/login", h.LoginHandler)
	r.Post("/logout", h.LogoutHandler)

	r.With(optionalSession).Get("/me", h.MeHandler)
}
