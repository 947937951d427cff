// Package session keeps server-side login state. A session is addressed only
// by its opaque token; records are created and destroyed, never updated.
package session

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

type Record struct {
	Token     string
	UserID    string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (r Record) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Store persists session records keyed by token.
type Store interface {
	Save(ctx context.Context, rec Record) error
	// Get returns ErrNotFound when no record exists for token.
	Get(ctx context.Context, token string) (Record, error)
	// Delete succeeds when the record is already gone.
	Delete(ctx context.Context, token string) error
	Close() error
}
