package cmd

import (
	"github.com/brogergvhs/erosscans/internal/config"
	"github.com/brogergvhs/erosscans/internal/resolver"
	"github.com/brogergvhs/erosscans/internal/ui"

	"github.com/spf13/cobra"
)

var (
	// runtime
	flagWorkers    int
	flagSkipBroken bool
	flagLongStrip  bool
	flagNoProgress bool
)

var pagesCmd = &cobra.Command{
	Use:   "pages <manga-id|url> [chapter-id]",
	Short: "List the page image URLs of one chapter, or of every selected chapter",
	Long: `With a chapter id, pages prints the image URLs of that chapter in reading order.
Without one, it resolves all chapters picked by --chapter, --range or --list
(or every chapter) concurrently and prints the pages per chapter.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := mangaIDArg(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd, config.Options{
			Workers:      flagWorkers,
			SkipBroken:   flagSkipBroken,
			LongStrip:    flagLongStrip,
			DefaultRange: flagRange,
			DefaultList:  flagList,
		})
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 2 {
			p, err := a.scraper.ChapterPages(a.ctx, id, args[1])
			if err != nil {
				return err
			}
			if len(p.Pages) == 0 {
				a.log.Infof("chapter %s has no page images", args[1])
			}
			return a.render(p)
		}

		selected, err := selectChapters(a, id)
		if err != nil {
			return err
		}

		var progress resolver.Progress
		var pm *ui.MPBProgressManager
		if !flagNoProgress && len(selected) > 1 {
			pm = ui.NewProgressManager()
			progress = pm.Register(id)
		}

		results, err := resolver.New(a.scraper,
			resolver.WithWorkers(a.cfg.Workers),
			resolver.WithSkipBroken(a.cfg.SkipBroken),
		).Resolve(a.ctx, selected, progress)
		if pm != nil {
			pm.Close()
		}
		if err != nil {
			return err
		}

		a.stats.TotalChapters.Add(int64(len(results)))
		a.stats.Failed.Add(int64(resolver.Failed(results)))
		for _, r := range results {
			a.stats.TotalPages.Add(int64(len(r.Pages.Pages)))
		}

		if err := a.render(results); err != nil {
			return err
		}

		a.stats.Summary(a.log)
		return nil
	},
}

func init() {
	pagesCmd.Flags().IntVar(&flagWorkers, "workers", 0, "chapters resolved in parallel (0 keeps the config value)")
	pagesCmd.Flags().BoolVar(&flagSkipBroken, "skip-broken", false, "report failed chapters instead of aborting")
	pagesCmd.Flags().BoolVar(&flagLongStrip, "long-strip", false, "mark chapters as long strip (webtoon) layout")
	pagesCmd.Flags().BoolVar(&flagNoProgress, "no-progress", false, "hide the progress bar")
	addSelectionFlags(pagesCmd)

	rootCmd.AddCommand(pagesCmd)
}
