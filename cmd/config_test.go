package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/brogergvhs/dhu/internal/config"
	"github.com/brogergvhs/dhu/internal/credentials"
	"github.com/brogergvhs/dhu/internal/portal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintState(t *testing.T) {
	dir := t.TempDir()
	store := credentials.NewStore(filepath.Join(dir, "credentials.yaml"))
	cfg := config.DefaultConfig()

	var buf bytes.Buffer
	printState(&buf, cfg, "/home/me", store)
	assert.Contains(t, buf.String(), "Sync dir:   "+filepath.Join("/home/me", config.DefaultSyncDir))
	assert.Contains(t, buf.String(), store.Path()+" (not saved)")

	require.NoError(t, store.Save(portal.Credentials{ID: "s2400001", Password: "hunter2"}))
	cfg.SyncDir = "/srv/dhu"

	buf.Reset()
	printState(&buf, cfg, "/home/me", store)
	assert.Contains(t, buf.String(), "Sync dir:   /srv/dhu")
	assert.Contains(t, buf.String(), store.Path()+" (saved)")
	assert.NotContains(t, buf.String(), "hunter2")
}
