package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFor(t *testing.T) {
	a := KeyFor("data:image/jpeg;base64,AAAA")
	b := KeyFor("data:image/jpeg;base64,AAAB")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, KeyFor("data:image/jpeg;base64,AAAA"))
	assert.Len(t, a, len("img:")+64)
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10, time.Hour)

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v1"))
	got, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "v1", got)

	require.NoError(t, c.Set(ctx, "k", "v2"))
	got, _ = c.Get(ctx, "k")
	assert.Equal(t, "v2", got)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(3, 0)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("k%d", i), "v"))
	}
	// Touch k0 so k1 becomes the oldest.
	_, ok := c.Get(ctx, "k0")
	require.True(t, ok)
	require.NoError(t, c.Set(ctx, "k3", "v"))

	assert.Equal(t, 3, c.Len())
	_, ok = c.Get(ctx, "k1")
	assert.False(t, ok)
	for _, k := range []string{"k0", "k2", "k3"} {
		_, ok := c.Get(ctx, k)
		assert.True(t, ok, k)
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10, time.Minute)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v"))
	now = now.Add(30 * time.Second)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}
