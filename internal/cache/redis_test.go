package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClientInvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

func TestNewRedisClientUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, "redis://127.0.0.1:1/0")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}

func TestDeleteWithoutKeys(t *testing.T) {
	r := &RedisClient{}
	assert.NoError(t, r.Delete(context.Background()))
}

func TestJSONRoundTripAndDelete(t *testing.T) {
	mr := miniredis.RunT(t)
	r := NewRedisClientFrom(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { r.Close() })
	ctx := context.Background()

	type entry struct {
		Code string `json:"jobId"`
	}

	var got []entry
	found, err := r.GetJSON(ctx, "jobs:accepted:0", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, r.SetJSON(ctx, "jobs:accepted:0", []entry{{Code: "IT001"}}, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("jobs:accepted:0"))

	found, err = r.GetJSON(ctx, "jobs:accepted:0", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []entry{{Code: "IT001"}}, got)

	require.NoError(t, mr.Set("broken", "{"))
	_, err = r.GetJSON(ctx, "broken", &got)
	assert.Error(t, err)

	require.NoError(t, r.Delete(ctx, "jobs:accepted:0", "broken"))
	assert.Empty(t, mr.Keys())
}

func TestGetStatus(t *testing.T) {
	mr := miniredis.RunT(t)
	r := NewRedisClientFrom(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { r.Close() })

	status, err := r.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, status["connected"])

	mr.Close()
	_, err = r.GetStatus(context.Background())
	assert.Error(t, err)
}
