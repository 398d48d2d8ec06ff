package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.toml")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store
}

func TestFileStore_Lifecycle(t *testing.T) {
	store := newTestFileStore(t)

	_, ok := store.Token()
	assert.False(t, ok, "fresh store must be empty")
	assert.False(t, Authenticated(store))

	require.NoError(t, store.Save("tok-123"))

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-123", token)
	assert.True(t, Authenticated(store))

	require.NoError(t, store.Clear())
	_, ok = store.Token()
	assert.False(t, ok, "cleared store must be empty")

	// clearing twice is fine
	require.NoError(t, store.Clear())
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save("tok-keep"))

	second, err := NewFileStore(path)
	require.NoError(t, err)

	token, ok := second.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-keep", token)
}

func TestFileStore_TightPermissions(t *testing.T) {
	store := newTestFileStore(t)
	require.NoError(t, store.Save("tok-secret"))

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_GarbageFileReadsAsAbsent(t *testing.T) {
	store := newTestFileStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte("not really toml ["), 0o600))

	_, ok := store.Token()
	assert.False(t, ok)
}

func TestNewStore_PicksBackend(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "session.toml"))
	require.NoError(t, err)
	_, isFile := store.(*FileStore)
	assert.True(t, isFile, "plain paths get the file store")

	_, err = NewStore("")
	assert.Error(t, err)
}

func TestGuard(t *testing.T) {
	store := newTestFileStore(t)
	guard := NewGuard(store)

	assert.False(t, guard.RequireSession(), "no credential, authenticated screens stay shut")
	assert.True(t, guard.RequireAnonymous(), "no credential, login screen may open")

	require.NoError(t, store.Save("tok"))

	assert.True(t, guard.RequireSession())
	assert.False(t, guard.RequireAnonymous(), "authenticated users bounce off the login screen")
}
