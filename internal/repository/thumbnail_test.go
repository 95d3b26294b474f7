package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThumbnailRepository_PutGet(t *testing.T) {
	repo := NewThumbnailRepo(newTestKV(t, 0), "thumbnails", newTestLogger(t))

	require.True(t, repo.Put(context.Background(), "event-1", "data:image/png;base64,AAAA"))

	blob, ok := repo.Get(context.Background(), "event-1")
	require.True(t, ok)
	assert.Equal(t, "data:image/png;base64,AAAA", blob)
}

func TestThumbnailRepository_GetAbsent(t *testing.T) {
	repo := NewThumbnailRepo(newTestKV(t, 0), "thumbnails", newTestLogger(t))

	_, ok := repo.Get(context.Background(), "missing")

	assert.False(t, ok)
}

func TestThumbnailRepository_PutAll(t *testing.T) {
	repo := NewThumbnailRepo(newTestKV(t, 0), "thumbnails", newTestLogger(t))

	ids := []string{"event-1-ac", "event-1-sp", "event-1-rj"}
	require.True(t, repo.PutAll(context.Background(), ids, "blob"))

	for _, id := range ids {
		blob, ok := repo.Get(context.Background(), id)
		require.True(t, ok, id)
		assert.Equal(t, "blob", blob)
	}
}

func TestThumbnailRepository_Remove(t *testing.T) {
	repo := NewThumbnailRepo(newTestKV(t, 0), "thumbnails", newTestLogger(t))

	require.True(t, repo.Put(context.Background(), "event-1", "blob"))
	require.True(t, repo.Remove(context.Background(), "event-1"))

	_, ok := repo.Get(context.Background(), "event-1")
	assert.False(t, ok)
}

func TestThumbnailRepository_RemoveAbsent(t *testing.T) {
	repo := NewThumbnailRepo(newTestKV(t, 0), "thumbnails", newTestLogger(t))

	assert.True(t, repo.Remove(context.Background(), "missing"))
}

func TestThumbnailRepository_CorruptMap(t *testing.T) {
	kv := newTestKV(t, 0)
	require.True(t, kv.Write(context.Background(), "thumbnails", "[]"))

	repo := NewThumbnailRepo(kv, "thumbnails", newTestLogger(t))

	_, ok := repo.Get(context.Background(), "event-1")
	assert.False(t, ok)

	// A write heals the corrupt entry.
	require.True(t, repo.Put(context.Background(), "event-1", "blob"))
	blob, ok := repo.Get(context.Background(), "event-1")
	require.True(t, ok)
	assert.Equal(t, "blob", blob)
}
