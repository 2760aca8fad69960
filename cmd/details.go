package cmd

import (
	"github.com/brogergvhs/erosscans/internal/config"

	"github.com/spf13/cobra"
)

var detailsCmd = &cobra.Command{
	Use:     "details <manga-id|url>",
	Aliases: []string{"show"},
	Short:   "Show title, status, authors and genres of a manga",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := mangaIDArg(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		m, err := a.scraper.MangaDetails(a.ctx, id)
		if err != nil {
			return err
		}

		return a.render(m)
	},
}

func init() {
	rootCmd.AddCommand(detailsCmd)
}
