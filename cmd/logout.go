package cmd

import (
	"fmt"

	"github.com/brogergvhs/dhu/internal/credentials"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved login info",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := credentials.NewStore(credentials.DefaultPath())
		if err := store.Purge(); err != nil {
			return err
		}

		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
