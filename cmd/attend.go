package cmd

import (
	"fmt"

	"github.com/brogergvhs/dhu/internal/portal"

	"github.com/spf13/cobra"
)

var attendCmd = &cobra.Command{
	Use:   "attend <code>",
	Short: "Register attendance with the code given in class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		msg, err := extract(cmd.Context(), e, portal.AttendExtractor(args[0]))
		if err != nil {
			return err
		}

		fmt.Println(msg)
		return nil
	},
}

func init() {
	addHeadFlag(attendCmd)
	rootCmd.AddCommand(attendCmd)
}
