package cmd

import (
	"fmt"
	"strings"

	"github.com/brogergvhs/erosscans/internal/config"
	"github.com/brogergvhs/erosscans/internal/providers"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	flagPage int
	flagPick bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search manga by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := providers.SearchQuery{Title: strings.Join(args, " ")}

		a, err := newApp(cmd, config.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.scraper.Search(a.ctx, query, flagPage)
		if err != nil {
			return err
		}

		if !flagPick {
			return a.render(res)
		}

		if len(res.Items) == 0 {
			return fmt.Errorf("no results for %q", query.Title)
		}

		picked, err := pickManga(res.Items)
		if err != nil {
			return err
		}

		m, err := a.scraper.MangaDetails(a.ctx, picked.ID)
		if err != nil {
			return err
		}

		return a.render(m)
	},
}

func pickManga(items []providers.Manga) (providers.Manga, error) {
	labels := make([]string, 0, len(items))
	for _, m := range items {
		labels = append(labels, fmt.Sprintf("%s  (%s)", m.Title(), m.ID))
	}

	prompt := promptui.Select{
		Label: "Select manga",
		Items: labels,
		Size:  10,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return providers.Manga{}, fmt.Errorf("selection cancelled")
	}

	return items[idx], nil
}

func init() {
	searchCmd.Flags().IntVar(&flagPage, "page", 1, "result page, starting at 1")
	searchCmd.Flags().BoolVar(&flagPick, "pick", false, "choose a result interactively and show its details")

	rootCmd.AddCommand(searchCmd)
}
