// internal/session/store_test.go
package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-concierge/internal/common/database"
	"realty-concierge/internal/common/logger"
)

func newTestStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, 30*time.Minute, logger.NewTestLogger(t)), mr
}

func TestRedisStore_RememberAndFetchPhone(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RememberPhone(ctx, "conn-1", "+15551234567"))

	phone, err := store.Phone(ctx, "conn-1")
	require.NoError(t, err)
	assert.Equal(t, "+15551234567", phone)
}

func TestRedisStore_PhoneMissing(t *testing.T) {
	store, _ := newTestStore(t)

	phone, err := store.Phone(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, phone)
}

func TestRedisStore_PhoneExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RememberPhone(ctx, "conn-1", "+15551234567"))
	mr.FastForward(time.Hour)

	phone, err := store.Phone(ctx, "conn-1")
	require.NoError(t, err)
	assert.Empty(t, phone)
}

func TestRedisStore_SessionsAreIsolated(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RememberPhone(ctx, "conn-1", "+15550000001"))
	require.NoError(t, store.RememberPhone(ctx, "conn-2", "+15550000002"))

	phone, err := store.Phone(ctx, "conn-2")
	require.NoError(t, err)
	assert.Equal(t, "+15550000002", phone)
}

func TestNoopStore(t *testing.T) {
	store := NewNoopStore()
	ctx := context.Background()

	require.NoError(t, store.RememberPhone(ctx, "conn-1", "+15551234567"))

	phone, err := store.Phone(ctx, "conn-1")
	require.NoError(t, err)
	assert.Empty(t, phone)
}
