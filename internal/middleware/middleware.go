package middleware

import (
	"net/http"

	"github.com/EmpoweredVote/Review-Backend/internal/httputil"
	"github.com/EmpoweredVote/Review-Backend/internal/utils"
)

type SessionFetcher interface {
	FindSession(r *http.Request) (utils.SessionData, error)
}

// SessionMiddleware rejects requests the fetcher cannot resolve to a live
// session and otherwise puts the session's identity on the request context.
// Expiry is decided by the fetcher.
func SessionMiddleware(fetcher SessionFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := fetcher.FindSession(r)
			if err != nil {
				httputil.WriteError(w, r, err)
				return
			}

			ctx := utils.WithIdentity(r.Context(), session.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession attaches the identity when a live session exists and
// lets every request through.
func OptionalSession(fetcher SessionFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := fetcher.FindSession(r)
			if err == nil {
				r = r.WithContext(utils.WithIdentity(r.Context(), session.Identity()))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware allows credentialed cross-origin calls. With an empty
// allow-list any origin is echoed back.
func CORSMiddleware(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			_, listed := allowed[origin]
			if origin != "" && (len(allowed) == 0 || listed) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
