package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brogergvhs/dhu/internal/portal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dhu", "credentials.yaml")
	s := NewStore(path)

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNoCredentials)

	require.NoError(t, s.Save(portal.Credentials{ID: " s2400001 ", Password: "hunter2"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, portal.Credentials{ID: "s2400001", Password: "hunter2"}, got)
}

func TestStorePurge(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "credentials.yaml"))

	require.NoError(t, s.Purge())

	require.NoError(t, s.Save(portal.Credentials{ID: "s2400001", Password: "hunter2"}))
	require.NoError(t, s.Purge())

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNoCredentials)
}

func TestStoreRejectsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "credentials.yaml"))

	require.Error(t, s.Save(portal.Credentials{ID: "", Password: "x"}))
	require.Error(t, s.Save(portal.Credentials{ID: "x", Password: ""}))
}

func TestStoreIncompleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: s2400001\n"), 0600))

	_, err := NewStore(path).Load()
	require.ErrorIs(t, err, ErrNoCredentials)
}

func TestStoreSatisfiesPortal(t *testing.T) {
	var _ portal.CredentialStore = NewStore("")
}
