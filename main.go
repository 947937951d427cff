package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EmpoweredVote/Review-Backend/internal/auth"
	"github.com/EmpoweredVote/Review-Backend/internal/config"
	"github.com/EmpoweredVote/Review-Backend/internal/db"
	"github.com/EmpoweredVote/Review-Backend/internal/logger"
	"github.com/EmpoweredVote/Review-Backend/internal/media"
	"github.com/EmpoweredVote/Review-Backend/internal/reviews"
	"github.com/EmpoweredVote/Review-Backend/internal/server"
	"github.com/EmpoweredVote/Review-Backend/internal/session"
	"gorm.io/gorm"
)

const (
	shutdownTimeout = 10 * time.Second
	sessionSweep    = 5 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
	defer logger.Flush()

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		logger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	conn, err := db.Connect(db.Options{
		Driver:   cfg.DBDriver,
		DSN:      cfg.DSN,
		PoolSize: cfg.DBPoolSize,
		Verbose:  cfg.IsDevelopment(),
	})
	if err != nil {
		return err
	}
	defer db.Close(conn)

	if err := auth.Init(conn); err != nil {
		return err
	}
	if err := reviews.Init(conn); err != nil {
		return err
	}

	store, err := newSessionStore(cfg, conn)
	if err != nil {
		return err
	}
	sessions := session.NewManager(store, session.Options{
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	})
	defer sessions.Close()

	storage, err := newStorage(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: "0.0.0.0:" + cfg.Port,
		Handler: server.NewRouter(server.Deps{
			DB:             conn,
			Sessions:       sessions,
			Storage:        storage,
			BcryptCost:     cfg.BcryptCost,
			UploadMaxBytes: cfg.UploadMaxBytes,
			CORSOrigins:    cfg.CORSOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newSessionStore(cfg *config.Config, conn *gorm.DB) (session.Store, error) {
	if cfg.SessionStore == "database" {
		return session.NewDBStore(conn)
	}
	return session.NewMemoryStore(sessionSweep), nil
}

func newStorage(cfg *config.Config) (media.Storage, error) {
	if cfg.UploadBackend == "s3" {
		return media.NewS3Storage(context.Background(), media.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
	}
	return media.NewDiskStorage(cfg.UploadDir)
}
