package keystore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lightning-wallet-daemon/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.enc")
	store, err := NewFileStore(path, "correct horse battery staple")
	require.NoError(t, err)
	return store
}

func TestFileStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Absent key reads empty.
	val, err := store.GetItem(ctx, ports.SecretKeySeed)
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, store.SetItem(ctx, ports.SecretKeySeed, "absorb cactus erupt"))
	require.NoError(t, store.SetItem(ctx, ports.SecretKeyPassword, "aabbcc"))

	val, err = store.GetItem(ctx, ports.SecretKeySeed)
	require.NoError(t, err)
	assert.Equal(t, "absorb cactus erupt", val)

	val, err = store.GetItem(ctx, ports.SecretKeyPassword)
	require.NoError(t, err)
	assert.Equal(t, "aabbcc", val)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.enc")
	ctx := context.Background()

	first, err := NewFileStore(path, "pass")
	require.NoError(t, err)
	require.NoError(t, first.SetItem(ctx, "seed", "absorb cactus"))

	second, err := NewFileStore(path, "pass")
	require.NoError(t, err)
	val, err := second.GetItem(ctx, "seed")
	require.NoError(t, err)
	assert.Equal(t, "absorb cactus", val)
}

func TestFileStore_WrongPassphraseFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.enc")
	ctx := context.Background()

	first, err := NewFileStore(path, "right")
	require.NoError(t, err)
	require.NoError(t, first.SetItem(ctx, "seed", "absorb cactus"))

	second, err := NewFileStore(path, "wrong")
	require.NoError(t, err)
	_, err = second.GetItem(ctx, "seed")
	assert.Error(t, err)
}

func TestFileStore_FileIsNotPlaintext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.enc")
	ctx := context.Background()

	store, err := NewFileStore(path, "pass")
	require.NoError(t, err)
	require.NoError(t, store.SetItem(ctx, "seed", "absorb cactus erupt"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "absorb")
}

func TestFileStore_EmptyPassphraseRejected(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "secrets.enc"), "")
	assert.Error(t, err)
}
