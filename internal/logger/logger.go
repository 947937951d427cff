// Package logger configures the process-wide slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Init writes to stdout and installs the result as the slog default.
func Init(isDev bool, sentryDSN string) *slog.Logger {
	return New(os.Stdout, isDev, sentryDSN)
}

// New logs human-readable text at debug level in development and JSON at
// info level otherwise. With a Sentry DSN, error records are forwarded too.
func New(w io.Writer, isDev bool, sentryDSN string) *slog.Logger {
	handler := consoleHandler(w, isDev)

	var sentryErr error
	if sentryDSN != "" {
		var forward slog.Handler
		forward, sentryErr = sentryHandler(sentryDSN)
		if sentryErr == nil {
			handler = slogmulti.Fanout(handler, forward)
		}
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	if sentryErr != nil {
		log.Warn("sentry disabled", "error", sentryErr)
	}
	return log
}

func consoleHandler(w io.Writer, isDev bool) slog.Handler {
	if isDev {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}

func sentryHandler(dsn string) (slog.Handler, error) {
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
		return nil, fmt.Errorf("init sentry: %w", err)
	}
	return slogsentry.Option{Level: slog.LevelError}.NewSentryHandler(), nil
}

// Flush gives pending Sentry events a moment to be sent before exit.
func Flush() {
	sentry.Flush(2 * time.Second)
}
