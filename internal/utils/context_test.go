package utils

import (
	"context"
	"testing"
)

func TestIdentityRoundTrip(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{UserID: "u1", Username: "alice"})

	id, ok := GetIdentityFromContext(ctx)
	if !ok {
		t.Fatal("expected identity in context")
	}
	if id.UserID != "u1" || id.Username != "alice" {
		t.Errorf("unexpected identity: %+v", id)
	}

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != "u1" {
		t.Errorf("expected user id u1, got %q (ok=%v)", userID, ok)
	}
}

func TestIdentityMissing(t *testing.T) {
	if _, ok := GetIdentityFromContext(context.Background()); ok {
		t.Error("expected no identity in empty context")
	}
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected no user id in empty context")
	}
}
