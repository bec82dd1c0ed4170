package cmd

import (
	"os"

	"github.com/brogergvhs/dhu/internal/portal"
	"github.com/brogergvhs/dhu/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagShowEnd   bool
	flagShowEmpty bool
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Show open tasks per course",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		q, err := portal.ParseQuarter(flagQuarter)
		if err != nil {
			return err
		}

		courses, err := extract(cmd.Context(), e, portal.TasksFor(q))
		if err != nil {
			return err
		}

		ui.RenderTasks(os.Stdout, courses, ui.TaskFilter{ShowDone: flagShowEnd, ShowEmpty: flagShowEmpty})
		return nil
	},
}

func init() {
	taskCmd.Flags().BoolVarP(&flagShowEnd, "end", "e", false, "also show submitted tasks")
	taskCmd.Flags().BoolVar(&flagShowEmpty, "empty", false, "also show courses without tasks")
	addQuarterFlag(taskCmd)
	addHeadFlag(taskCmd)
	rootCmd.AddCommand(taskCmd)
}
