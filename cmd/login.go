package cmd

import (
	"context"
	"fmt"

	"github.com/brogergvhs/dhu/internal/credentials"
	"github.com/brogergvhs/dhu/internal/portal"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save the portal login info and check it against the portal",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		creds, err := credentials.Prompt()
		if err != nil {
			return err
		}
		if err := e.store.Save(creds); err != nil {
			return fmt.Errorf("save login info: %w", err)
		}

		_, err = portal.WithSession(cmd.Context(), e.manager, e.launchOptions(),
			func(context.Context, *portal.Session) (struct{}, error) {
				return struct{}{}, nil
			})
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s. Login info saved to %s\n", creds.ID, e.store.Path())
		return nil
	},
}

func init() {
	addHeadFlag(loginCmd)
	rootCmd.AddCommand(loginCmd)
}
