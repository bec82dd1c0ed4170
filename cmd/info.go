package cmd

import (
	"context"
	"os"

	"github.com/brogergvhs/dhu/internal/portal"
	"github.com/brogergvhs/dhu/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagInfoAll         bool
	flagInfoIncludeRead bool
	flagInfoContent     bool
	flagInfoDownload    bool
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print portal notices as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		root, err := e.syncDir()
		if err != nil {
			return err
		}

		ex := portal.InfoExtractor(portal.InfoOptions{
			ListAll:  flagInfoAll,
			SkipRead: !flagInfoIncludeRead,
			Content:  flagInfoContent,
		})

		_, err = portal.WithPage(cmd.Context(), e.manager, e.launchOptions(),
			func(ctx context.Context, p portal.Page) (struct{}, error) {
				notices, err := portal.Extract(ctx, p, ex)
				if err != nil {
					return struct{}{}, err
				}

				if err := ui.RenderJSON(os.Stdout, notices); err != nil {
					return struct{}{}, err
				}
				if !flagInfoDownload {
					return struct{}{}, nil
				}
				return struct{}{}, fetch(ctx, e, p, root, noticeBatch(root, notices))
			})
		return err
	},
}

func init() {
	infoCmd.Flags().BoolVar(&flagInfoAll, "all", false, "list every notice, not only the latest page")
	infoCmd.Flags().BoolVarP(&flagInfoIncludeRead, "includeRead", "r", false, "include notices already read")
	infoCmd.Flags().BoolVarP(&flagInfoContent, "content", "c", false, "open each notice and include its body")
	infoCmd.Flags().BoolVarP(&flagInfoDownload, "download", "d", false, "download notice attachments")
	addDirFlag(infoCmd)
	addHeadFlag(infoCmd)
	rootCmd.AddCommand(infoCmd)
}
