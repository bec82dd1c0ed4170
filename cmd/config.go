package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/brogergvhs/dhu/internal/config"
	"github.com/brogergvhs/dhu/internal/credentials"

	"github.com/spf13/cobra"
)

var flagShowKey string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the merged config, or manage dhu config profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := config.LoadMerged(config.Options{
			IgnoreConfig: flagIgnoreConfig,
			Debug:        flagDebug,
		})
		if err != nil {
			return err
		}

		if flagShowKey != "" {
			v, err := cfg.Get(flagShowKey)
			if err != nil {
				return err
			}
			fmt.Println(v)
			return nil
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		fmt.Printf("Loaded config from:\n  %s\n\n", used)
		cfg.Print(os.Stdout)
		printState(os.Stdout, cfg, cwd, credentials.NewStore(credentials.DefaultPath()))
		return nil
	},
}

// printState reports where dhu keeps its files for this config.
func printState(w io.Writer, cfg *config.Config, cwd string, store *credentials.Store) {
	status := "saved"
	if _, err := store.Load(); err != nil {
		status = "not saved"
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sync dir:   %s\n", cfg.ResolveSyncDir(cwd))
	fmt.Fprintf(w, "Login info: %s (%s)\n", store.Path(), status)
}

func init() {
	configCmd.Flags().StringVarP(&flagShowKey, "show", "s", "", "print the value of one key")
	rootCmd.AddCommand(configCmd)
}
