package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/brogergvhs/dhu/internal/portal"
	"github.com/brogergvhs/dhu/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
)

var rootCmd = &cobra.Command{
	Use:           "dhu",
	Short:         "Command line client for the DHU student portal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
}

func Execute() {
	ctx, stop := util.SignalContext(context.Background())
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, exitMessage(err))
	os.Exit(1)
}

// exitMessage is what the user sees when a command fails. The session manager
// has already logged the portal's rejection text, so a rejected login only
// gets the follow-up hint.
func exitMessage(err error) string {
	if errors.Is(err, portal.ErrLoginRejected) {
		return "The saved login info was removed. Run `dhu login` to sign in again."
	}
	return err.Error()
}
