package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/contact-service/internal/domain"
)

// fakeRedis records commands in memory; embedding Cmdable panics on anything not overridden.
type fakeRedis struct {
	redis.Cmdable
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, f.err)
}

func TestRedisContactCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	c := NewRedisContactCache(rdb, time.Minute)

	_, ok, err := c.Get(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, ok)

	addr := "Main St 1"
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	contact := &domain.Contact{ID: "c1", Name: "Jane Doe", Email: "jane@x.com", Phone: "+1234567890", Address: &addr, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, c.Set(ctx, contact))
	assert.Equal(t, time.Minute, rdb.ttls["contact:c1"])

	got, ok, err := c.Get(ctx, "c1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, contact, got)

	require.NoError(t, c.Invalidate(ctx, "c1"))
	_, ok, err = c.Get(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisContactCache_PropagatesErrors(t *testing.T) {
	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")
	c := NewRedisContactCache(rdb, time.Minute)

	_, _, err := c.Get(context.Background(), "c1")
	assert.Error(t, err)
	assert.Error(t, c.Set(context.Background(), &domain.Contact{ID: "c1"}))
}

func TestNewRedisContactCache_Disabled(t *testing.T) {
	assert.IsType(t, NopContactCache{}, NewRedisContactCache(nil, time.Minute))
	assert.IsType(t, NopContactCache{}, NewRedisContactCache(newFakeRedis(), 0))
}
