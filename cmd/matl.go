package cmd

import (
	"context"
	"os"

	"github.com/brogergvhs/dhu/internal/portal"
	"github.com/brogergvhs/dhu/internal/ui"

	"github.com/spf13/cobra"
)

var flagMatlDownload bool

var matlCmd = &cobra.Command{
	Use:   "matl",
	Short: "List course materials and optionally download their attachments",
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

				ui.RenderMaterials(os.Stdout, courses)
				if !flagMatlDownload {
					return struct{}{}, nil
				}
				return struct{}{}, fetch(ctx, e, p, root, materialBatches(root, courses))
			})
		return err
	},
}

func init() {
	matlCmd.Flags().BoolVarP(&flagMatlDownload, "download", "d", false, "download attachments")
	addDirFlag(matlCmd)
	addHeadFlag(matlCmd)
	rootCmd.AddCommand(matlCmd)
}
