package cmd

import (
	"os"

	"github.com/brogergvhs/dhu/internal/portal"
	"github.com/brogergvhs/dhu/internal/ui"

	"github.com/spf13/cobra"
)

var atteCmd = &cobra.Command{
	Use:   "atte",
	Short: "Show attendance per course",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		q, err := portal.ParseQuarter(flagQuarter)
		if err != nil {
			return err
		}

		list, err := extract(cmd.Context(), e, portal.AttendanceFor(q))
		if err != nil {
			return err
		}

		ui.RenderAttendance(os.Stdout, list)
		return nil
	},
}

func init() {
	addQuarterFlag(atteCmd)
	addHeadFlag(atteCmd)
	rootCmd.AddCommand(atteCmd)
}
