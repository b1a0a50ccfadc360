package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyCache_SetAndGet(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	got, err := cache.Get(ctx, "ledger:1:k1")
	require.NoError(t, err)
	assert.Nil(t, got)

	value := []byte(`{"id":1,"amount":500}`)
	require.NoError(t, cache.Set(ctx, "ledger:1:k1", value, time.Hour))

	got, err = cache.Get(ctx, "ledger:1:k1")
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestIdempotencyCache_FirstWriteWins(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("first"), time.Hour))
	require.NoError(t, cache.Set(ctx, "k", []byte("second"), time.Hour))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)
}

func TestIdempotencyCache_Expiry(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Second))
	s.FastForward(2 * time.Second)

	got, err := cache.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestIdempotencyCache_ServerDown(t *testing.T) {
	s, client := newTestClient(t)
	cache := NewIdempotencyCache(client)
	s.Close()

	_, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
}
