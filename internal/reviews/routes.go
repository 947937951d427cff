package reviews

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes registers the review endpoints. Listing is public; creating
// and deleting run behind requireSession.
func SetupRoutes(r chi.Router, h *Handler, requireSession func(http.Handler) http.Handler) {
	r.Get("/artists/{artistId}/reviews", h.ListHandler)

	r.Group(func(r chi.Router) {
		r.Use(requireSession)
		r.Post("/reviews", h.CreateHandler)
		r.Delete("/reviews/{id}", h.DeleteHandler)
	})
}
