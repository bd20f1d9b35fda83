package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*CodeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewCodeStore(client, ttl), mr
}

func TestCodeStore_SaveAndGet(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", "123456"))
	code, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "123456", code)

	require.True(t, mr.Exists("verify:alice"))
	require.Equal(t, time.Minute, mr.TTL("verify:alice"))
}

func TestCodeStore_Overwrite(t *testing.T) {
	store, _ := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", "111111"))
	require.NoError(t, store.Save(ctx, "alice", "222222"))
	code, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "222222", code)
}

func TestCodeStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "alice", "123456"))
	mr.FastForward(11 * time.Minute)

	code, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, code)
}

func TestCodeStore_Missing(t *testing.T) {
	store, _ := newTestStore(t, 0)
	code, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	require.Empty(t, code)
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	require.Error(t, err)
}
