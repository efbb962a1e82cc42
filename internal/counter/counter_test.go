package counter

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var c FollowerCounter = Nop{}

	require.NoError(t, c.Set(ctx, "org", 5))
	require.NoError(t, c.Incr(ctx, "org"))
	_, ok, err := c.Get(ctx, "org")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Close())
}

// Runs against a live server when TOUNESNA_TEST_REDIS is set.
func TestRedisFollowerCounter(t *testing.T) {
	addr := os.Getenv("TOUNESNA_TEST_REDIS")
	if addr == "" {
		t.Skip("TOUNESNA_TEST_REDIS not set")
	}
	ctx := context.Background()
	c, err := NewRedisFollowerCounter(ctx, addr, "", 0)
	require.NoError(t, err)
	defer c.Close()

	org := "test-" + t.Name()
	defer c.client.Del(ctx, followersKey(org))

	// Increments on a missing key do not create it.
	require.NoError(t, c.Incr(ctx, org))
	_, ok, err := c.Get(ctx, org)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, org, 1))
	require.NoError(t, c.Incr(ctx, org))
	n, ok, err := c.Get(ctx, org)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), n)

	require.NoError(t, c.Decr(ctx, org))
	require.NoError(t, c.Decr(ctx, org))
	require.NoError(t, c.Decr(ctx, org))
	n, _, err = c.Get(ctx, org)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
