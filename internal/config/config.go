package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	PortalURL       string `yaml:"portal_url"`
	Headless        bool   `yaml:"headless"`
	SyncDir         string `yaml:"sync_dir"`
	DownloadWorkers int    `yaml:"download_workers"`
	Debug           bool   `yaml:"debug"`
}

// Options are the CLI flags that override the loaded config.
type Options struct {
	IgnoreConfig    bool
	Debug           bool
	Head            bool
	SyncDir         string
	DownloadWorkers int
}

const (
	DefaultPortalURL       = "https://portal.dhw.ac.jp/uprx/"
	DefaultSyncDir         = ".dhu-sync"
	DefaultDownloadWorkers = 4
)

func DefaultConfig() *Config {
	return &Config{
		PortalURL:       DefaultPortalURL,
		Headless:        true,
		SyncDir:         "",
		DownloadWorkers: DefaultDownloadWorkers,
		Debug:           false,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.Head {
		c.Headless = false
	}
	if o.SyncDir != "" {
		c.SyncDir = o.SyncDir
	}
	if o.DownloadWorkers != 0 {
		c.DownloadWorkers = o.DownloadWorkers
	}
}

func normalizeDefaults(c *Config) {
	if c.PortalURL == "" {
		c.PortalURL = DefaultPortalURL
	}
	if c.DownloadWorkers <= 0 {
		c.DownloadWorkers = DefaultDownloadWorkers
	}
}

// ResolveSyncDir picks where attachments go: the flag/config value, else
// .dhu-sync under cwd.
func (c *Config) ResolveSyncDir(cwd string) string {
	if c.SyncDir != "" {
		return c.SyncDir
	}
	return filepath.Join(cwd, DefaultSyncDir)
}

var keys = map[string]struct {
	get   func(c *Config) string
	set   func(c *Config, v string) error
	unset func(c *Config)
}{
	"portal_url": {
		get:   func(c *Config) string { return c.PortalURL },
		set:   func(c *Config, v string) error { c.PortalURL = v; return nil },
		unset: func(c *Config) { c.PortalURL = DefaultPortalURL },
	},
	"headless": {
		get: func(c *Config) string { return strconv.FormatBool(c.Headless) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("headless: %w", err)
			}
			c.Headless = b
			return nil
		},
		unset: func(c *Config) { c.Headless = true },
	},
	"sync_dir": {
		get:   func(c *Config) string { return c.SyncDir },
		set:   func(c *Config, v string) error { c.SyncDir = v; return nil },
		unset: func(c *Config) { c.SyncDir = "" },
	},
	"download_workers": {
		get: func(c *Config) string { return strconv.Itoa(c.DownloadWorkers) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("download_workers must be a positive number, got %q", v)
			}
			c.DownloadWorkers = n
			return nil
		},
		unset: func(c *Config) { c.DownloadWorkers = DefaultDownloadWorkers },
	},
	"debug": {
		get: func(c *Config) string { return strconv.FormatBool(c.Debug) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("debug: %w", err)
			}
			c.Debug = b
			return nil
		},
		unset: func(c *Config) { c.Debug = false },
	},
}

func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown key %s, expected: %s", key, strings.Join(Keys(), ", "))
}

func (c *Config) Get(key string) (string, error) {
	k, ok := keys[key]
	if !ok {
		return "", unknownKey(key)
	}
	return k.get(c), nil
}

func (c *Config) Set(key, value string) error {
	k, ok := keys[key]
	if !ok {
		return unknownKey(key)
	}
	return k.set(c, strings.TrimSpace(value))
}

func (c *Config) Unset(key string) error {
	k, ok := keys[key]
	if !ok {
		return unknownKey(key)
	}
	k.unset(c)
	return nil
}

func (c *Config) Print(w io.Writer) {
	fmt.Fprintf(w, " -portal_url: %s\n", c.PortalURL)
	fmt.Fprintf(w, " -headless: %t\n", c.Headless)
	if c.SyncDir != "" {
		fmt.Fprintf(w, " -sync_dir: %s\n", c.SyncDir)
	}
	fmt.Fprintf(w, " -download_workers: %d\n", c.DownloadWorkers)
	if c.Debug {
		fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
}
