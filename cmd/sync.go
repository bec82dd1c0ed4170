package cmd

import (
	"context"

	"github.com/brogergvhs/dhu/internal/portal"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download every material and notice attachment into the sync folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		root, err := e.syncDir()
		if err != nil {
			return err
		}

		_, err = portal.WithPage(cmd.Context(), e.manager, e.launchOptions(),
			func(ctx context.Context, p portal.Page) (struct{}, error) {
				courses, err := portal.Extract(ctx, p, portal.MaterialsExtractor)
				if err != nil {
					return struct{}{}, err
				}
				e.log.Infof("found %d courses with materials", len(courses))

				if err := portal.Home(ctx, p); err != nil {
					return struct{}{}, err
				}
				notices, err := portal.Extract(ctx, p, portal.InfoExtractor(portal.InfoOptions{ListAll: true}))
				if err != nil {
					return struct{}{}, err
				}
				e.log.Infof("found %d notices", len(notices))

				batches := append(materialBatches(root, courses), noticeBatch(root, notices)...)
				return struct{}{}, fetch(ctx, e, p, root, batches)
			})
		return err
	},
}

func init() {
	addDirFlag(syncCmd)
	addHeadFlag(syncCmd)
	rootCmd.AddCommand(syncCmd)
}
