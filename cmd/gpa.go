package cmd

import (
	"os"

	"github.com/brogergvhs/dhu/internal/portal"
	"github.com/brogergvhs/dhu/internal/ui"

	"github.com/spf13/cobra"
)

var gpaCmd = &cobra.Command{
	Use:   "gpa",
	Short: "Show grades and the overall GPA",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		g, err := extract(cmd.Context(), e, portal.GPAExtractor)
		if err != nil {
			return err
		}

		ui.RenderGPA(os.Stdout, g)
		return nil
	},
}

func init() {
	addHeadFlag(gpaCmd)
	rootCmd.AddCommand(gpaCmd)
}
