package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes registers the upload endpoint behind requireSession. files,
// when non-nil, serves stored uploads publicly under /uploads.
func SetupRoutes(r chi.Router, h *Handler, requireSession func(http.Handler) http.Handler, files http.Handler) {
	r.With(requireSession).Post("/upload-image", h.UploadHandler)

	if files != nil {
		r.Get(DefaultURLPrefix+"/*", files.ServeHTTP)
		r.Head(DefaultURLPrefix+"/*", files.ServeHTTP)
	}
}
