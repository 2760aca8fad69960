package cmd

import (
	"github.com/brogergvhs/erosscans/internal/config"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the source identity and the site it points at",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		return a.render(a.scraper.Info())
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
