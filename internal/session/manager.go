package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/EmpoweredVote/Review-Backend/internal/apperr"
	"github.com/EmpoweredVote/Review-Backend/internal/utils"
	"github.com/google/uuid"
)

const DefaultTTL = 8 * time.Hour

type Options struct {
	// Secret signs the cookie value so a forged token is rejected before
	// any store lookup.
	Secret     string
	TTL        time.Duration
	CookieName string
	// Secure restricts the cookie to HTTPS. Off by default for local
	// development over plain HTTP.
	Secure bool
}

// Manager creates, resolves and destroys sessions and owns the cookie that
// carries their tokens.
type Manager struct {
	store Store
	opts  Options
	now   func() time.Time
}

func NewManager(store Store, opts Options) *Manager {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	return &Manager{store: store, opts: opts, now: time.Now}
}

// Create stores a fresh session for the user and sets its cookie on w.
// Expiry is absolute: TTL from creation, never extended.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, userID, username string) (string, error) {
	now := m.now()
	rec := Record{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.opts.TTL),
	}
	if err := m.store.Save(ctx, rec); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    sign(m.opts.Secret, rec.Token),
		Path:     "/",
		Expires:  rec.ExpiresAt,
		MaxAge:   int(m.opts.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.opts.Secure,
	})
	return rec.Token, nil
}

// Lookup returns the record for token if it exists and has not expired.
// It never changes the store; expired records are left for the janitor or
// cmd/purge-sessions to remove.
func (m *Manager) Lookup(ctx context.Context, token string) (Record, bool, error) {
	rec, err := m.resolve(ctx, token)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrExpired) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

// resolve reads the live record for token. It reports ErrNotFound for an
// unknown token and ErrExpired once now reaches the record's expiry.
func (m *Manager) resolve(ctx context.Context, token string) (Record, error) {
	if token == "" {
		return Record{}, ErrNotFound
	}
	rec, err := m.store.Get(ctx, token)
	if err != nil {
		return Record{}, err
	}
	if rec.Expired(m.now()) {
		return Record{}, ErrExpired
	}
	return rec, nil
}

// Destroy removes the session. Destroying an unknown token is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

// TokenFromRequest extracts and verifies the session token from the cookie.
func (m *Manager) TokenFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.opts.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return unsign(m.opts.Secret, cookie.Value)
}

// ClearCookie tells the client to drop its session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.opts.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.opts.Secure,
	})
}

// FindSession resolves the request's cookie for the authorization gate. A
// missing, forged or unknown token and an expired record are reported as
// Unauthenticated. Session state is left untouched.
func (m *Manager) FindSession(r *http.Request) (utils.SessionData, error) {
	token, ok := m.TokenFromRequest(r)
	if !ok {
		return utils.SessionData{}, apperr.Unauthenticated("Not authenticated")
	}

	rec, err := m.resolve(r.Context(), token)
	switch {
	case errors.Is(err, ErrNotFound):
		return utils.SessionData{}, apperr.Unauthenticated("Not authenticated")
	case errors.Is(err, ErrExpired):
		return utils.SessionData{}, apperr.Unauthenticated("Session expired")
	case err != nil:
		return utils.SessionData{}, apperr.Internal(err)
	}

	return utils.SessionData{
		UserID:    rec.UserID,
		Username:  rec.Username,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

func (m *Manager) Close() error {
	return m.store.Close()
}
