package cmd

import (
	"context"
	"os"

	"github.com/brogergvhs/dhu/internal/config"
	"github.com/brogergvhs/dhu/internal/credentials"
	"github.com/brogergvhs/dhu/internal/portal"
	"github.com/brogergvhs/dhu/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagHead    bool
	flagDir     string
	flagQuarter string
)

func addHeadFlag(c *cobra.Command) {
	c.Flags().BoolVar(&flagHead, "head", false, "show the browser window")
}

func addQuarterFlag(c *cobra.Command) {
	c.Flags().StringVarP(&flagQuarter, "quarter", "q", "", "quarter 1/2/3/4 (default: current)")
}

func addDirFlag(c *cobra.Command) {
	c.Flags().StringVar(&flagDir, "dir", "", "folder for downloaded attachments (default ./.dhu-sync)")
}

// env is what every browser command needs: merged config, logger and a
// session manager bound to the saved credentials.
type env struct {
	cfg     *config.Config
	log     *ui.Logger
	store   *credentials.Store
	manager *portal.Manager
}

func newEnv() (*env, error) {
	cfg, used, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Head:         flagHead,
		SyncDir:      flagDir,
	})
	if err != nil {
		return nil, err
	}

	log := ui.NewLogger(cfg.Debug)
	log.Debugf("config: %s", used)

	store := credentials.NewStore(credentials.DefaultPath())

	var launcher portal.ChromeLauncher
	if cfg.Debug {
		launcher.Logf = log.Debugf
	}

	return &env{
		cfg:     cfg,
		log:     log,
		store:   store,
		manager: portal.NewManager(launcher, store, log, cfg.PortalURL),
	}, nil
}

func (e *env) launchOptions() portal.LaunchOptions {
	return portal.LaunchOptions{Headless: e.cfg.Headless}
}

func (e *env) syncDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return e.cfg.ResolveSyncDir(cwd), nil
}

// extract logs in, runs one extraction routine and releases the browser.
func extract[T any](ctx context.Context, e *env, ex portal.Extractor[T]) (T, error) {
	return portal.WithPage(ctx, e.manager, e.launchOptions(), func(ctx context.Context, p portal.Page) (T, error) {
		return portal.Extract(ctx, p, ex)
	})
}
