package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	defer s.Close()

	rec := Record{Token: "t1", UserID: "u1", Username: "alice", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	require.NoError(t, s.Delete(ctx, "t1"))
	require.NoError(t, s.Delete(ctx, "t1"))

	_, err = s.Get(ctx, "t1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStorePurgeExpired(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	defer s.Close()

	now := time.Now()
	require.NoError(t, s.Save(ctx, Record{Token: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, s.Save(ctx, Record{Token: "new", ExpiresAt: now.Add(time.Minute)}))

	assert.Equal(t, 1, s.PurgeExpired(now))
	assert.Equal(t, 1, s.Len())

	_, err := s.Get(ctx, "new")
	assert.NoError(t, err)
}

func TestMemoryStoreJanitor(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(5 * time.Millisecond)
	defer s.Close()

	require.NoError(t, s.Save(ctx, Record{Token: "old", ExpiresAt: time.Now().Add(-time.Minute)}))

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestMemoryStoreCloseTwice(t *testing.T) {
	s := NewMemoryStore(time.Millisecond)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token := string(rune('a' + i%26))
			_ = s.Save(ctx, Record{Token: token, ExpiresAt: time.Now().Add(time.Hour)})
			_, _ = s.Get(ctx, token)
			_ = s.Delete(ctx, token)
		}(i)
	}
	wg.Wait()
}
