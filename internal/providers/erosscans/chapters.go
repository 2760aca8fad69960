package erosscans

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/brogergvhs/erosscans/internal/providers"
)

const (
	selChapterRow  = ".eph-num"
	selChapterName = ".chapternum"
	selChapterDate = ".chapterdate"
)

// Chapters lists the chapter rows of the manga page in the order the site
// renders them, newest first.
func (s *Scraper) Chapters(ctx context.Context, mangaID string) ([]providers.Chapter, error) {
	doc, err := s.fetchDOM(ctx, s.MangaURL(mangaID))
	if err != nil {
		return nil, err
	}

	chapters := []providers.Chapter{}
	doc.Find(selChapterRow).Each(func(_ int, row *goquery.Selection) {
		name := row.Find(selChapterName).First()
		title := strings.TrimSpace(name.Text())
		href := chapterHref(row, name)

		chapters = append(chapters, providers.Chapter{
			ID:          slugFromHref(href),
			MangaID:     mangaID,
			Name:        title,
			URL:         href,
			Number:      parseChapterNumber(title),
			PublishedAt: parseChapterDate(row.Find(selChapterDate).First().Text()),
		})
	})

	return chapters, nil
}

// chapterHref prefers an href on the name element itself; the theme usually
// wraps the name in the row's anchor instead.
func chapterHref(row, name *goquery.Selection) string {
	if href, ok := name.Attr("href"); ok {
		return strings.TrimSpace(href)
	}
	if href, ok := row.Find("a[href]").First().Attr("href"); ok {
		return strings.TrimSpace(href)
	}
	if href, ok := name.Closest("a[href]").Attr("href"); ok {
		return strings.TrimSpace(href)
	}

	return ""
}

// parseChapterNumber reads the second whitespace token of a name such as
// "Chapter 12.5". Anything that is not a finite, non-negative number is 0.
func parseChapterNumber(name string) float64 {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return 0
	}

	n, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}

	return n
}

// parseChapterDate returns the zero time for text it cannot read, e.g.
// relative dates like "2 days ago".
func parseChapterDate(text string) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}
	}

	t, err := dateparse.ParseAny(text)
	if err != nil {
		return time.Time{}
	}

	return t
}
