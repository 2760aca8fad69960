package erosscans

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/erosscans/internal/providers"
)

const selReaderImages = ".reading-content img"

// ChapterPages collects reader images in document order. A chapter without
// images is not an error; the caller decides what an empty list means.
func (s *Scraper) ChapterPages(ctx context.Context, mangaID, chapterID string) (providers.ChapterPages, error) {
	doc, err := s.fetchDOM(ctx, s.chapterURL(mangaID, chapterID))
	if err != nil {
		return providers.ChapterPages{}, err
	}

	pages := []string{}
	doc.Find(selReaderImages).Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if src = strings.TrimSpace(src); src != "" {
			pages = append(pages, src)
		}
	})

	return providers.ChapterPages{
		ChapterID: chapterID,
		MangaID:   mangaID,
		Pages:     pages,
		LongStrip: s.longStrip,
	}, nil
}
