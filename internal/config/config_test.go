package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "dhu")
}

func TestLoadMergedWithoutConfig(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{Head: true, SyncDir: "/tmp/sync"})
	require.NoError(t, err)
	assert.Equal(t, "(default config in memory)", used)
	assert.False(t, cfg.Headless)
	assert.Equal(t, "/tmp/sync", cfg.SyncDir)
	assert.Equal(t, DefaultPortalURL, cfg.PortalURL)
	assert.Equal(t, DefaultDownloadWorkers, cfg.DownloadWorkers)
}

func TestLoadMergedActiveProfile(t *testing.T) {
	root := isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "configs", "Default.yaml"), path)

	require.NoError(t, os.WriteFile(path, []byte("sync_dir: /srv/dhu\ndownload_workers: 0\ndebug: true\n"), 0644))

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "/srv/dhu", cfg.SyncDir)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Headless)
	assert.Equal(t, DefaultDownloadWorkers, cfg.DownloadWorkers)

	cfg, used, err = LoadMerged(Options{IgnoreConfig: true})
	require.NoError(t, err)
	assert.Equal(t, "(ignored config)", used)
	assert.Empty(t, cfg.SyncDir)
}

func TestInitDefaultConfigTwice(t *testing.T) {
	isolate(t)

	_, err := InitDefaultConfig()
	require.NoError(t, err)

	_, err = InitDefaultConfig()
	require.ErrorIs(t, err, os.ErrExist)
}

func TestSwitchAndList(t *testing.T) {
	isolate(t)

	_, err := InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, SwitchConfig("lab"))

	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "lab", label)

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Default", list[0].Label)
	assert.False(t, list[0].Active)
	assert.Equal(t, "lab", list[1].Label)
	assert.True(t, list[1].Active)

	require.Error(t, SwitchConfig(" "))
	require.Error(t, SwitchConfig("../evil"))
}

func TestLoadActiveCreatesDefault(t *testing.T) {
	root := isolate(t)

	cfg, path, err := LoadActive()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "configs", "Default.yaml"), path)
	assert.Equal(t, DefaultConfig(), cfg)

	require.NoError(t, cfg.Set("sync_dir", " /srv/dhu "))
	require.NoError(t, SaveYAML(cfg, path))

	again, _, err := LoadActive()
	require.NoError(t, err)
	assert.Equal(t, "/srv/dhu", again.SyncDir)
}

func TestSetGetUnset(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Set("headless", "false"))
	v, err := cfg.Get("headless")
	require.NoError(t, err)
	assert.Equal(t, "false", v)

	require.NoError(t, cfg.Set("download_workers", "8"))
	assert.Equal(t, 8, cfg.DownloadWorkers)
	require.Error(t, cfg.Set("download_workers", "-1"))
	require.Error(t, cfg.Set("headless", "maybe"))

	require.NoError(t, cfg.Unset("headless"))
	require.NoError(t, cfg.Unset("download_workers"))
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = cfg.Get("syncDir")
	require.ErrorContains(t, err, "unknown key syncDir")
	require.Error(t, cfg.Set("nope", "x"))
	require.Error(t, cfg.Unset("nope"))
}

func TestResolveSyncDir(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("/home/me", ".dhu-sync"), cfg.ResolveSyncDir("/home/me"))

	cfg.SyncDir = "/srv/dhu"
	assert.Equal(t, "/srv/dhu", cfg.ResolveSyncDir("/home/me"))
}

func TestKeysSorted(t *testing.T) {
	assert.Equal(t, []string{"debug", "download_workers", "headless", "portal_url", "sync_dir"}, Keys())
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Print(&buf)
	assert.Contains(t, buf.String(), " -portal_url: "+DefaultPortalURL)
	assert.NotContains(t, buf.String(), "sync_dir")

	buf.Reset()
	cfg.SyncDir = "/srv/dhu"
	cfg.Print(&buf)
	assert.Contains(t, buf.String(), " -sync_dir: /srv/dhu")
}
