package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "cocmarket", "token"))

	// Missing file means logged out, not an error
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("my-token"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "my-token", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is fine
	require.NoError(t, store.Clear())
}

func TestMemoryTokenStore(t *testing.T) {
	store := &MemoryTokenStore{}

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("tok"))
	token, _ = store.Load()
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Clear())
	token, _ = store.Load()
	assert.Empty(t, token)
}
