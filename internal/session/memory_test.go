package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/calperez/auth-service/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	token, err := store.Create(ctx, 42, "user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	// 32 random bytes, base64 URL-safe without padding
	assert.Len(t, token, 43)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, uint(42), sess.UserID)
	assert.Equal(t, "user@example.com", sess.Email)
	assert.Equal(t, token, sess.Token)
	assert.True(t, sess.ExpiresAt.After(sess.CreatedAt))
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(ctx, uint(i), "user@example.com")
		require.NoError(t, err)
		assert.False(t, seen[token], "token issued twice")
		seen[token] = true
	}
}

func TestMemoryStore_GetUnknownToken(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()

	sess, err := store.Get(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	token, err := store.Create(ctx, 1, "user@example.com")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, token))

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, sess)

	// Deleting again is a no-op, not an error
	require.NoError(t, store.Delete(ctx, token))
	require.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := session.NewMemoryStore(30 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	token, err := store.Create(ctx, 1, "user@example.com")
	require.NoError(t, err)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, sess)

	time.Sleep(60 * time.Millisecond)

	sess, err = store.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, sess, "expired session must be invisible")
	assert.Equal(t, 0, store.Len(), "expired session must be reclaimed on access")
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(id uint) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				token, err := store.Create(ctx, id, "user@example.com")
				if err != nil {
					t.Errorf("create failed: %v", err)
					return
				}
				sess, err := store.Get(ctx, token)
				if err != nil || sess == nil {
					t.Errorf("get failed for own token: %v", err)
					return
				}
				if err := store.Delete(ctx, token); err != nil {
					t.Errorf("delete failed: %v", err)
					return
				}
			}
		}(uint(i))
	}

	wg.Wait()
	assert.Equal(t, 0, store.Len())
}
