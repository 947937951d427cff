package utils

import (
	"context"
	"time"
)

type contextKey string

const ContextIdentityKey contextKey = "identity"

// Identity is the {user_id, username} pair a valid session resolves to.
type Identity struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ContextIdentityKey, id)
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ContextIdentityKey).(Identity)
	return id, ok
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := GetIdentityFromContext(ctx)
	return id.UserID, ok
}

// SessionData is what a session fetcher hands to the authorization gate.
type SessionData struct {
	UserID    string
	Username  string
	ExpiresAt time.Time
}

func (s SessionData) Identity() Identity {
	return Identity{UserID: s.UserID, Username: s.Username}
}
