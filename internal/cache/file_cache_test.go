package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aaravmahajanofficial/tienda/internal/cache"
	"github.com/aaravmahajanofficial/tienda/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileCache(t *testing.T) (cache.Cache, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "carrito.json")
	c, err := cache.NewFileCache(path)
	require.NoError(t, err)

	return c, path
}

func TestFileCache_RoundTrip(t *testing.T) {
	ctx := t.Context()
	c, _ := newFileCache(t)
	key := cache.Key(cache.CartKeyPrefix, "anonymous")

	var missing models.Cart
	found, err := c.Get(ctx, key, &missing)
	require.NoError(t, err)
	assert.False(t, found)

	want := sampleCart()
	require.NoError(t, c.Set(ctx, key, want, 0))

	var got models.Cart
	found, err = c.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestFileCache_KeysAreIndependent(t *testing.T) {
	ctx := t.Context()
	c, _ := newFileCache(t)

	require.NoError(t, c.Set(ctx, "a", sampleCart(), 0))
	require.NoError(t, c.Set(ctx, "b", models.Cart{}, 0))
	require.NoError(t, c.Delete(ctx, "b"))
	require.NoError(t, c.Delete(ctx, "never-set"))

	var got models.Cart
	found, err := c.Get(ctx, "a", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, got.Entries, 2)

	found, err = c.Get(ctx, "b", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileCache_PersistsAcrossInstances(t *testing.T) {
	ctx := t.Context()
	c, path := newFileCache(t)
	require.NoError(t, c.Set(ctx, "k", sampleCart(), 0))
	require.NoError(t, c.Close())

	reopened, err := cache.NewFileCache(path)
	require.NoError(t, err)

	var got models.Cart
	found, err := reopened.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sampleCart(), got)
}

func TestFileCache_CorruptDocument(t *testing.T) {
	ctx := t.Context()
	c, path := newFileCache(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	var got models.Cart
	found, err := c.Get(ctx, "k", &got)
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "failed to decode cache file")

	// writes recover by replacing the document
	require.NoError(t, c.Set(ctx, "k", sampleCart(), 0))
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestFileCache_MalformedValue(t *testing.T) {
	ctx := t.Context()
	c, path := newFileCache(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"k": {"entries": "nope"}}`), 0o600))

	var got models.Cart
	found, err := c.Get(ctx, "k", &got)
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), "failed to unmarshal cache data for key k")
}

func TestFileCache_MarshalError(t *testing.T) {
	c, _ := newFileCache(t)

	err := c.Set(t.Context(), "k", make(chan int), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal value for key k")
}

func TestFileCache_ReadFailureKeepsDocument(t *testing.T) {
	ctx := t.Context()
	c, path := newFileCache(t)

	// A directory in place of the file makes every read fail without the
	// content being corrupt.
	require.NoError(t, os.Mkdir(path, 0o755))

	var got models.Cart
	_, err := c.Get(ctx, "k", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, cache.ErrMalformed)

	err = c.Set(ctx, "k", sampleCart(), 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, cache.ErrMalformed)

	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestFileCache_MalformedIsMarked(t *testing.T) {
	ctx := t.Context()
	c, path := newFileCache(t)

	require.NoError(t, os.WriteFile(path, []byte(`{"k": "nope"}`), 0o600))

	var got models.Cart
	_, err := c.Get(ctx, "k", &got)
	assert.ErrorIs(t, err, cache.ErrMalformed)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = c.Get(ctx, "k", &got)
	assert.ErrorIs(t, err, cache.ErrMalformed)
}
