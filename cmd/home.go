package cmd

import (
	"github.com/brogergvhs/erosscans/internal/config"
	"github.com/brogergvhs/erosscans/internal/providers"

	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the shelves of the landing page (Popular Today, Latest Update)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		var sections []providers.HomeSection
		err = a.scraper.HomeSections(a.ctx, func(s providers.HomeSection) {
			sections = append(sections, s)
		})
		if err != nil {
			return err
		}

		return a.render(sections)
	},
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Page through the Latest Update listing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.scraper.ViewMore(a.ctx, "latest", flagLatestPage)
		if err != nil {
			return err
		}

		return a.render(res)
	},
}

var flagLatestPage int

func init() {
	latestCmd.Flags().IntVar(&flagLatestPage, "page", 1, "listing page, starting at 1")

	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(latestCmd)
}
