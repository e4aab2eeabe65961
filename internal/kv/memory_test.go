package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore(100, time.Minute)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMemoryStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	_, found, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))

	val, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v"), val)
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "persistent", []byte("v"), 0))

	// Run a sweep by hand; persistent entries must survive it.
	s.cleanup()

	val, found, err := s.Get(ctx, "persistent")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v"), val)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "ephemeral", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, found, err := s.Get(ctx, "ephemeral")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), 0))
	require.NoError(t, s.Delete(ctx, "k"))

	_, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreMultiOps(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	items := map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}
	require.NoError(t, s.SetMultiple(ctx, items, 0))

	got, err := s.GetMultiple(ctx, []string{"a", "b", "missing"})
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestMemoryStoreCleanupEvictsOnlyExpiring(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(1, time.Minute)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Set(ctx, "persistent", []byte("p"), 0))
	require.NoError(t, s.Set(ctx, "cached1", []byte("c"), time.Hour))
	require.NoError(t, s.Set(ctx, "cached2", []byte("c"), time.Hour))

	s.cleanup()

	// Over max size: expiring entries go first, persistent data stays.
	_, found, err := s.Get(ctx, "persistent")
	require.NoError(t, err)
	assert.True(t, found)
}
