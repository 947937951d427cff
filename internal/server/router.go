// Package server assembles the HTTP router from the feature packages.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/EmpoweredVote/Review-Backend/internal/auth"
	"github.com/EmpoweredVote/Review-Backend/internal/db"
	"github.com/EmpoweredVote/Review-Backend/internal/httputil"
	"github.com/EmpoweredVote/Review-Backend/internal/media"
	"github.com/EmpoweredVote/Review-Backend/internal/middleware"
	"github.com/EmpoweredVote/Review-Backend/internal/reviews"
	"github.com/EmpoweredVote/Review-Backend/internal/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Sessions *session.Manager
	Storage  media.Storage

	BcryptCost     int
	UploadMaxBytes int64
	CORSOrigins    []string
}

// fileServer is implemented by storages that serve their own files.
type fileServer interface {
	Handler() http.Handler
}

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func NewRouter(d Deps) http.Handler {
	requireSession := middleware.SessionMiddleware(d.Sessions)

	authSvc := auth.NewService(auth.NewGormUserStore(d.DB), auth.NewBcryptHasher(d.BcryptCost))
	reviewSvc := reviews.NewService(reviews.NewGormStore(d.DB))
	intake := media.NewIntake(d.Storage, d.UploadMaxBytes)

	var files http.Handler
	if fs, ok := d.Storage.(fileServer); ok {
		files = fs.Handler()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORSMiddleware(d.CORSOrigins))

	r.Get("/", RootHandler)
	r.Get("/healthz", healthHandler(d.DB))

	auth.SetupRoutes(r, auth.NewHandler(authSvc, d.Sessions), middleware.OptionalSession(d.Sessions))
	media.SetupRoutes(r, media.NewHandler(intake), requireSession, files)
	reviews.SetupRoutes(r, reviews.NewHandler(reviewSvc), requireSession)

	return r
}

func healthHandler(conn *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx, conn); err != nil {
			slog.WarnContext(ctx, "health check failed", "error", err)
			httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
