package cmd

import (
	"fmt"

	"github.com/brogergvhs/erosscans/internal/config"
	"github.com/brogergvhs/erosscans/internal/providers"

	"github.com/spf13/cobra"
)

var (
	// selection
	flagChapter string
	flagRange   string
	flagList    string
)

func addSelectionFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagChapter, "chapter", "", "single chapter by number or id (e.g. 5 or 28.5), or by position")
	c.Flags().StringVar(&flagRange, "range", "", "range of chapters by position (e.g. 5-12)")
	c.Flags().StringVar(&flagList, "list", "", "specific chapter positions (e.g. 1,3,5)")
}

var chaptersCmd = &cobra.Command{
	Use:   "chapters <manga-id|url>",
	Short: "List the chapters of a manga, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := mangaIDArg(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd, config.Options{DefaultRange: flagRange, DefaultList: flagList})
		if err != nil {
			return err
		}
		defer a.Close()

		selected, err := selectChapters(a, id)
		if err != nil {
			return err
		}

		return a.render(selected)
	},
}

// selectChapters fetches the chapter list and applies the selection flags,
// falling back to the config defaults for range and list.
func selectChapters(a *app, mangaID string) ([]providers.Chapter, error) {
	all, err := a.scraper.Chapters(a.ctx, mangaID)
	if err != nil {
		return nil, err
	}

	selected := providers.Filter(all, flagChapter, a.cfg.DefaultRange, a.cfg.DefaultList)
	if flagChapter != "" && len(selected) == 0 {
		return nil, fmt.Errorf("chapter %q not found among %d chapters", flagChapter, len(all))
	}
	if len(all) > 0 && len(selected) == 0 {
		return nil, fmt.Errorf("no chapters selected")
	}

	a.log.Debugf("selected %d of %d chapters", len(selected), len(all))
	return selected, nil
}

func init() {
	addSelectionFlags(chaptersCmd)
	rootCmd.AddCommand(chaptersCmd)
}
