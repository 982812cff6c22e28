package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseflow/caseflow/internal/adapter/memory"
)

func TestCache_SetAndGet(t *testing.T) {
	c := memory.NewCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "agent:1", []byte("lena"), time.Minute))

	got, err := c.Get(ctx, "agent:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("lena"), got)
}

func TestCache_MissingKey(t *testing.T) {
	c := memory.NewCache()

	_, err := c.Get(context.Background(), "agent:unknown")
	assert.ErrorIs(t, err, memory.ErrNotFound)
}

func TestCache_ExpiredEntryIsGone(t *testing.T) {
	c := memory.NewCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "agent:1", []byte("lena"), -time.Second))

	_, err := c.Get(ctx, "agent:1")
	assert.ErrorIs(t, err, memory.ErrNotFound)
}

func TestCache_SetRefreshesTTL(t *testing.T) {
	c := memory.NewCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "agent:1", []byte("old"), -time.Second))
	require.NoError(t, c.Set(ctx, "agent:1", []byte("new"), time.Minute))

	got, err := c.Get(ctx, "agent:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestCache_Invalidate(t *testing.T) {
	c := memory.NewCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "agent:1", []byte("lena"), time.Minute))
	require.NoError(t, c.Invalidate(ctx, "agent:1"))

	_, err := c.Get(ctx, "agent:1")
	assert.ErrorIs(t, err, memory.ErrNotFound)
}
