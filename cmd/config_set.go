package cmd

import (
	"fmt"
	"strings"

	"github.com/brogergvhs/dhu/internal/config"

	"github.com/spf13/cobra"
)

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a key in the active config (" + strings.Join(config.Keys(), ", ") + ")",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := config.LoadActive()
		if err != nil {
			return err
		}

		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.SaveYAML(cfg, path); err != nil {
			return err
		}

		v, _ := cfg.Get(args[0])
		fmt.Printf("%s = %s (%s)\n", args[0], v, path)
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:       "unset <key>",
	Short:     "Restore a key of the active config to its default",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := config.LoadActive()
		if err != nil {
			return err
		}

		if err := cfg.Unset(args[0]); err != nil {
			return err
		}
		if err := config.SaveYAML(cfg, path); err != nil {
			return err
		}

		v, _ := cfg.Get(args[0])
		fmt.Printf("%s = %s (%s)\n", args[0], v, path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
}
