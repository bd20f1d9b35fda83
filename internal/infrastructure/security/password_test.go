package security

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/careercharma/learnhub-api/internal/infrastructure/queue"
)

func newHasher(t *testing.T) *BcryptHasher {
	t.Helper()
	pool := queue.NewPool(2, zerolog.Nop())
	pool.Start()
	t.Cleanup(pool.Stop)
	return NewBcryptHasher(pool, bcrypt.MinCost)
}

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := newHasher(t)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "pass123")
	require.NoError(t, err)
	require.NotEqual(t, "pass123", hash)

	ok, err := h.Compare(ctx, hash, "pass123")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.Compare(ctx, hash, "wrong")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := newHasher(t)

	ok, err := h.Compare(context.Background(), "not-a-hash", "pass123")
	require.Error(t, err)
	require.False(t, ok)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	h := NewBcryptHasher(nil, 0)
	require.Equal(t, DefaultCost, h.cost)
}
