package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	teamID := uuid.MustParse("6f1c0c4e-3f53-4d1f-9b7e-0a4b0f3b8a11")

	assert.Equal(t, "team:6f1c0c4e-3f53-4d1f-9b7e-0a4b0f3b8a11:returns:pending", TeamKey(teamID, ViewPendingReturns))
	assert.Equal(t, "all:returns:pending", GlobalKey(ViewPendingReturns))
}

func TestNoopNeverHits(t *testing.T) {
	var c ViewCache = Noop{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []string{"a"}))
	var out []string
	hit, err := c.Get(ctx, "k", &out)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.InvalidateTeam(ctx, uuid.New()))
}

// The Redis round trip runs only when REDIS_TEST_ADDR points at a disposable instance
func TestRedisViewCacheInvalidateTeam(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	client, err := NewRedisClient(ctx, addr, "", 0)
	require.NoError(t, err)
	defer client.Close()

	c := NewRedisViewCache(client, time.Minute)
	require.NoError(t, c.Ping(ctx))
	mine, other := uuid.New(), uuid.New()

	sub := client.Subscribe(ctx, InvalidationChannel)
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, TeamKey(mine, ViewPendingReturns), []int{1}))
	require.NoError(t, c.Set(ctx, TeamKey(other, ViewPendingReturns), []int{2}))
	require.NoError(t, c.Set(ctx, GlobalKey(ViewPendingReturns), []int{1, 2}))

	require.NoError(t, c.InvalidateTeam(ctx, mine))

	var out []int
	hit, err := c.Get(ctx, TeamKey(mine, ViewPendingReturns), &out)
	require.NoError(t, err)
	assert.False(t, hit)

	hit, err = c.Get(ctx, GlobalKey(ViewPendingReturns), &out)
	require.NoError(t, err)
	assert.False(t, hit)

	hit, err = c.Get(ctx, TeamKey(other, ViewPendingReturns), &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []int{2}, out)

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, mine.String(), msg.Payload)
}
